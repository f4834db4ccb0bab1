package repo

import (
	"context"
	"fmt"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// TreatmentRepository manages billed courses of care.
type TreatmentRepository struct {
	gateway *db.Gateway
}

// NewTreatmentRepository creates a treatment repository.
func NewTreatmentRepository(gateway *db.Gateway) *TreatmentRepository {
	return &TreatmentRepository{gateway: gateway}
}

// Create inserts a treatment and returns it with the assigned id. A
// negative total value is rejected before the statement runs.
func (r *TreatmentRepository) Create(ctx context.Context, t model.Treatment) (model.Treatment, error) {
	if t.TotalValue.IsNegative() {
		return model.Treatment{}, fmt.Errorf("treatment value must not be negative: %s", t.TotalValue)
	}

	res, err := r.gateway.Mutate(ctx, `
		INSERT INTO tratamentos (pacienteId, data, descricao, valor_total, status_pagamento)
		VALUES (?, ?, ?, ?, ?)`,
		t.PatientID, t.Date, t.Description, t.TotalValue.InexactFloat64(), t.PaymentStatus)
	if err != nil {
		return model.Treatment{}, fmt.Errorf("failed to create treatment: %w", err)
	}

	t.ID = res.LastInsertID
	return t, nil
}

// UpdatePaymentStatus changes the treatment's payment status.
func (r *TreatmentRepository) UpdatePaymentStatus(ctx context.Context, id int64, status string) error {
	res, err := r.gateway.Mutate(ctx,
		`UPDATE tratamentos SET status_pagamento = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update treatment: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("treatment %d not found", id)
	}
	return nil
}

// Delete removes a treatment.
func (r *TreatmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM tratamentos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	return nil
}

// Get returns a treatment by id, or nil if absent.
func (r *TreatmentRepository) Get(ctx context.Context, id int64) (*model.Treatment, error) {
	rs, err := r.gateway.Read(ctx, `SELECT * FROM tratamentos WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}
	if rs.Len() == 0 {
		return nil, nil
	}
	row := rs.Rows[0]
	t := model.Treatment{
		ID:            rowInt(row, "id"),
		PatientID:     rowString(row, "pacienteId"),
		Date:          rowString(row, "data"),
		Description:   rowString(row, "descricao"),
		TotalValue:    rowDecimal(row, "valor_total"),
		PaymentStatus: rowString(row, "status_pagamento"),
	}
	return &t, nil
}

// ListByPatient returns a patient's treatments, most recent first.
func (r *TreatmentRepository) ListByPatient(ctx context.Context, patientID string) ([]model.Treatment, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM tratamentos WHERE pacienteId = ? ORDER BY data DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}

	treatments := make([]model.Treatment, 0, rs.Len())
	for _, row := range rs.Rows {
		treatments = append(treatments, model.Treatment{
			ID:            rowInt(row, "id"),
			PatientID:     rowString(row, "pacienteId"),
			Date:          rowString(row, "data"),
			Description:   rowString(row, "descricao"),
			TotalValue:    rowDecimal(row, "valor_total"),
			PaymentStatus: rowString(row, "status_pagamento"),
		})
	}
	return treatments, nil
}
