// Package render formats clinic records into the two fixed print layouts:
// the treatment contract and the filled medical-history questionnaire.
// Output is a self-contained HTML blob; the desktop shell owns the actual
// print surface.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clinicadesk/clinicadesk/internal/model"
)

// ContractData is the input for the treatment contract layout.
type ContractData struct {
	PatientName  string
	PatientTaxID string
	Description  string
	TotalValue   decimal.Decimal
	Date         string
}

var funcs = template.FuncMap{
	"brdate": FormatDate,
	"brl":    FormatBRL,
	"mark":   Mark,
	"multiline": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}

var contractTmpl = template.Must(template.New("contract").Funcs(funcs).Parse(contractHTML))
var questionnaireTmpl = template.Must(template.New("questionnaire").Funcs(funcs).Parse(questionnaireHTML))

// Contract renders the treatment contract.
func Contract(data ContractData) ([]byte, error) {
	var buf bytes.Buffer
	if err := contractTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}
	return buf.Bytes(), nil
}

// QuestionnaireForm renders the filled questionnaire.
func QuestionnaireForm(q model.Questionnaire) ([]byte, error) {
	var buf bytes.Buffer
	if err := questionnaireTmpl.Execute(&buf, q); err != nil {
		return nil, fmt.Errorf("failed to render questionnaire: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatDate converts YYYY-MM-DD to DD/MM/YYYY. Anything else passes
// through unchanged.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatBRL formats a monetary amount the pt-BR way: R$ 1.234,56.
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "R$ " + strings.Join(grouped, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// Mark renders a tri-state flag as the checkbox mark of the printed form:
// "X" for yes, empty otherwise.
func Mark(b *bool) string {
	if b != nil && *b {
		return "X"
	}
	return ""
}
