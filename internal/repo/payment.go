package repo

import (
	"context"
	"fmt"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// PaymentRepository manages installments against treatments.
type PaymentRepository struct {
	gateway *db.Gateway
}

// NewPaymentRepository creates a payment repository.
func NewPaymentRepository(gateway *db.Gateway) *PaymentRepository {
	return &PaymentRepository{gateway: gateway}
}

// Create inserts a payment and returns it with the assigned id. The
// treatment must exist; a dangling treatment id is rejected by the store.
func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	if p.Amount.IsNegative() {
		return model.Payment{}, fmt.Errorf("payment amount must not be negative: %s", p.Amount)
	}

	res, err := r.gateway.Mutate(ctx, `
		INSERT INTO pagamentos (tratamentoId, data, valor_pago, forma_pagamento)
		VALUES (?, ?, ?, ?)`,
		p.TreatmentID, p.Date, p.Amount.InexactFloat64(), p.Method)
	if err != nil {
		return model.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = res.LastInsertID
	return p, nil
}

// Delete removes a payment.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM pagamentos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

// ListByTreatment returns the payments recorded against a treatment in
// chronological order.
func (r *PaymentRepository) ListByTreatment(ctx context.Context, treatmentID int64) ([]model.Payment, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM pagamentos WHERE tratamentoId = ? ORDER BY data`, treatmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]model.Payment, 0, rs.Len())
	for _, row := range rs.Rows {
		payments = append(payments, model.Payment{
			ID:          rowInt(row, "id"),
			TreatmentID: rowInt(row, "tratamentoId"),
			Date:        rowString(row, "data"),
			Amount:      rowDecimal(row, "valor_pago"),
			Method:      rowString(row, "forma_pagamento"),
		})
	}
	return payments, nil
}

// Outstanding returns how much of the treatment's total is still unpaid.
func (r *PaymentRepository) Outstanding(ctx context.Context, treatmentID int64) (string, error) {
	rs, err := r.gateway.Read(ctx, `
		SELECT t.valor_total - COALESCE(SUM(pg.valor_pago), 0) AS saldo
		FROM tratamentos t
		LEFT JOIN pagamentos pg ON pg.tratamentoId = t.id
		WHERE t.id = ?
		GROUP BY t.id`, treatmentID)
	if err != nil {
		return "", fmt.Errorf("failed to compute outstanding balance: %w", err)
	}
	if rs.Len() == 0 {
		return "", fmt.Errorf("treatment %d not found", treatmentID)
	}
	return rowDecimal(rs.Rows[0], "saldo").StringFixed(2), nil
}
