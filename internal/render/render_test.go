package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clinicadesk/clinicadesk/internal/model"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "iso date", in: "2026-02-01", want: "01/02/2026"},
		{name: "empty passes through", in: "", want: ""},
		{name: "malformed passes through", in: "fevereiro", want: "fevereiro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "150", want: "R$ 150,00"},
		{name: "cents", in: "99.9", want: "R$ 99,90"},
		{name: "thousands grouped", in: "1234.56", want: "R$ 1.234,56"},
		{name: "millions grouped", in: "1234567.89", want: "R$ 1.234.567,89"},
		{name: "zero", in: "0", want: "R$ 0,00"},
		{name: "negative", in: "-12.5", want: "-R$ 12,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if got := FormatBRL(d); got != tt.want {
				t.Errorf("FormatBRL(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMark(t *testing.T) {
	yes, no := true, false
	if got := Mark(&yes); got != "X" {
		t.Errorf("Mark(yes) = %q, want X", got)
	}
	if got := Mark(&no); got != "" {
		t.Errorf("Mark(no) = %q, want empty", got)
	}
	if got := Mark(nil); got != "" {
		t.Errorf("Mark(nil) = %q, want empty", got)
	}
}

func TestContract(t *testing.T) {
	html, err := Contract(ContractData{
		PatientName:  "Maria Souza",
		PatientTaxID: "123.456.789-00",
		Description:  "Canal no dente 26\nRestauração",
		TotalValue:   decimal.NewFromFloat(1234.56),
		Date:         "2026-02-01",
	})
	if err != nil {
		t.Fatalf("Contract() error: %v", err)
	}

	out := string(html)
	for _, want := range []string{"Maria Souza", "123.456.789-00", "R$ 1.234,56", "01/02/2026", "Canal no dente 26<br>Restauração"} {
		if !strings.Contains(out, want) {
			t.Errorf("contract output missing %q", want)
		}
	}
}

func TestQuestionnaireForm(t *testing.T) {
	yes := true
	html, err := QuestionnaireForm(model.Questionnaire{
		Name:             "Bruno Lima",
		TakingMedication: &yes,
		ToothChartNotes:  "26 restaurado",
	})
	if err != nil {
		t.Fatalf("QuestionnaireForm() error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "Bruno Lima") {
		t.Error("questionnaire output missing patient name")
	}
	if !strings.Contains(out, "26 restaurado") {
		t.Error("questionnaire output missing tooth-chart notes")
	}
	// The answered flag renders as a mark; unanswered ones stay blank.
	if !strings.Contains(out, `<span class="box">X</span>`) {
		t.Error("questionnaire output missing checked box")
	}
}
