package repo

import (
	"context"
	"fmt"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// QuestionnaireRepository manages the medical-history intake form, at most
// one per patient.
type QuestionnaireRepository struct {
	gateway *db.Gateway
}

// NewQuestionnaireRepository creates a questionnaire repository.
func NewQuestionnaireRepository(gateway *db.Gateway) *QuestionnaireRepository {
	return &QuestionnaireRepository{gateway: gateway}
}

// Upsert stores the questionnaire, replacing any previous answers for the
// same patient.
func (r *QuestionnaireRepository) Upsert(ctx context.Context, q model.Questionnaire) error {
	_, err := r.gateway.Mutate(ctx, `
		INSERT OR REPLACE INTO anamnese (
			pacienteId, nome, cpf, data_nascimento, endereco, cep,
			fone, fone_emergencia, email, falar_com,
			tratamento_medico, tratamento_medico_qual,
			tomando_medicamento, tomando_medicamento_qual,
			alergia_doenca, alergia_doenca_qual,
			diabetico, doenca_coracao, hipertenso, hemofilico,
			pes_incham, tosse_persistente,
			alergia_anestesia, alergia_anestesia_qual,
			submetido_anestesia, teve_hemorragia,
			tem_vicio, tem_vicio_qual,
			esta_gravida, sofre_epilepsia,
			algo_a_declarar, algo_a_declarar_qual,
			odontograma_anotacoes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.PatientID, q.Name, q.TaxID, q.BirthDate, q.Address, q.PostalCode,
		q.Phone, q.EmergencyPhone, q.Email, q.EmergencyName,
		flagValue(q.UnderMedicalTreatment), q.UnderMedicalTreatmentNote,
		flagValue(q.TakingMedication), q.TakingMedicationNote,
		flagValue(q.HasAllergy), q.HasAllergyNote,
		flagValue(q.Diabetic), flagValue(q.HeartDisease), flagValue(q.Hypertensive), flagValue(q.Hemophiliac),
		flagValue(q.SwollenFeet), flagValue(q.PersistentCough),
		flagValue(q.AnesthesiaAllergy), q.AnesthesiaAllergyNote,
		flagValue(q.HadAnesthesia), flagValue(q.HadHemorrhage),
		flagValue(q.HasAddiction), q.HasAddictionNote,
		flagValue(q.Pregnant), flagValue(q.Epileptic),
		flagValue(q.OtherRemarks), q.OtherRemarksNote,
		q.ToothChartNotes)
	if err != nil {
		return fmt.Errorf("failed to store questionnaire: %w", err)
	}
	return nil
}

// Get returns a patient's questionnaire, or nil if none was filled in.
func (r *QuestionnaireRepository) Get(ctx context.Context, patientID string) (*model.Questionnaire, error) {
	rs, err := r.gateway.Read(ctx, `SELECT * FROM anamnese WHERE pacienteId = ?`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questionnaire: %w", err)
	}
	if rs.Len() == 0 {
		return nil, nil
	}

	row := rs.Rows[0]
	q := model.Questionnaire{
		PatientID:      rowString(row, "pacienteId"),
		Name:           rowString(row, "nome"),
		TaxID:          rowString(row, "cpf"),
		BirthDate:      rowString(row, "data_nascimento"),
		Address:        rowString(row, "endereco"),
		PostalCode:     rowString(row, "cep"),
		Phone:          rowString(row, "fone"),
		EmergencyPhone: rowString(row, "fone_emergencia"),
		EmergencyName:  rowString(row, "falar_com"),
		Email:          rowString(row, "email"),

		UnderMedicalTreatment:     rowFlag(row, "tratamento_medico"),
		UnderMedicalTreatmentNote: rowString(row, "tratamento_medico_qual"),
		TakingMedication:          rowFlag(row, "tomando_medicamento"),
		TakingMedicationNote:      rowString(row, "tomando_medicamento_qual"),
		HasAllergy:                rowFlag(row, "alergia_doenca"),
		HasAllergyNote:            rowString(row, "alergia_doenca_qual"),
		Diabetic:                  rowFlag(row, "diabetico"),
		HeartDisease:              rowFlag(row, "doenca_coracao"),
		Hypertensive:              rowFlag(row, "hipertenso"),
		Hemophiliac:               rowFlag(row, "hemofilico"),
		SwollenFeet:               rowFlag(row, "pes_incham"),
		PersistentCough:           rowFlag(row, "tosse_persistente"),
		AnesthesiaAllergy:         rowFlag(row, "alergia_anestesia"),
		AnesthesiaAllergyNote:     rowString(row, "alergia_anestesia_qual"),
		HadAnesthesia:             rowFlag(row, "submetido_anestesia"),
		HadHemorrhage:             rowFlag(row, "teve_hemorragia"),
		HasAddiction:              rowFlag(row, "tem_vicio"),
		HasAddictionNote:          rowString(row, "tem_vicio_qual"),
		Pregnant:                  rowFlag(row, "esta_gravida"),
		Epileptic:                 rowFlag(row, "sofre_epilepsia"),
		OtherRemarks:              rowFlag(row, "algo_a_declarar"),
		OtherRemarksNote:          rowString(row, "algo_a_declarar_qual"),

		ToothChartNotes: rowString(row, "odontograma_anotacoes"),
	}
	return &q, nil
}

// Delete removes a patient's questionnaire.
func (r *QuestionnaireRepository) Delete(ctx context.Context, patientID string) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM anamnese WHERE pacienteId = ?`, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete questionnaire: %w", err)
	}
	return nil
}
