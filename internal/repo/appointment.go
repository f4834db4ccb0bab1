package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// AppointmentRepository manages scheduled visits.
type AppointmentRepository struct {
	gateway *db.Gateway
}

// NewAppointmentRepository creates an appointment repository.
func NewAppointmentRepository(gateway *db.Gateway) *AppointmentRepository {
	return &AppointmentRepository{gateway: gateway}
}

// Create inserts an appointment. An empty ID gets a generated one. The
// patient must exist; a dangling patient id is rejected by the store.
func (r *AppointmentRepository) Create(ctx context.Context, a model.Appointment) (model.Appointment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	_, err := r.gateway.Mutate(ctx, `
		INSERT INTO consultas (id, pacienteId, data, hora, tipo, status, duracao, observacoes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.PatientID, a.Date, a.Time, a.Type, a.Status, a.Duration, a.Notes)
	if err != nil {
		return model.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}
	return a, nil
}

// UpdateStatus changes an appointment's status.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.gateway.Mutate(ctx, `UPDATE consultas SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// Delete removes an appointment.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM consultas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

// ListByPatient returns a patient's appointments, most recent first.
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM consultas WHERE pacienteId = ? ORDER BY data DESC, hora DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return scanAppointments(rs), nil
}

// ListByDate returns all appointments on a given day ordered by time.
func (r *AppointmentRepository) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	rs, err := r.gateway.Read(ctx,
		`SELECT * FROM consultas WHERE data = ? ORDER BY hora`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return scanAppointments(rs), nil
}

func scanAppointments(rs *db.RecordSet) []model.Appointment {
	appointments := make([]model.Appointment, 0, rs.Len())
	for _, row := range rs.Rows {
		appointments = append(appointments, model.Appointment{
			ID:        rowString(row, "id"),
			PatientID: rowString(row, "pacienteId"),
			Date:      rowString(row, "data"),
			Time:      rowString(row, "hora"),
			Type:      rowString(row, "tipo"),
			Status:    rowString(row, "status"),
			Duration:  rowString(row, "duracao"),
			Notes:     rowString(row, "observacoes"),
		})
	}
	return appointments
}
