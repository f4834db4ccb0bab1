package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/model"
)

// PatientRepository manages patient records.
type PatientRepository struct {
	gateway *db.Gateway
}

// NewPatientRepository creates a patient repository.
func NewPatientRepository(gateway *db.Gateway) *PatientRepository {
	return &PatientRepository{gateway: gateway}
}

// Create inserts a patient. An empty ID gets a generated one; an empty
// registration date defaults to today. Returns the stored patient.
func (r *PatientRepository) Create(ctx context.Context, p model.Patient) (model.Patient, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.RegisteredAt == "" {
		p.RegisteredAt = time.Now().Format("2006-01-02")
	}

	_, err := r.gateway.Mutate(ctx, `
		INSERT INTO pacientes (id, nome, telefone, email, nascimento, cpf, endereco, observacoes, dataCadastro)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Phone, p.Email, p.BirthDate, p.TaxID, p.Address, p.Notes, p.RegisteredAt)
	if err != nil {
		return model.Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}
	return p, nil
}

// Update rewrites a patient's mutable fields.
func (r *PatientRepository) Update(ctx context.Context, p model.Patient) error {
	res, err := r.gateway.Mutate(ctx, `
		UPDATE pacientes
		SET nome = ?, telefone = ?, email = ?, nascimento = ?, cpf = ?, endereco = ?, observacoes = ?
		WHERE id = ?`,
		p.Name, p.Phone, p.Email, p.BirthDate, p.TaxID, p.Address, p.Notes, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("patient %s not found", p.ID)
	}
	return nil
}

// Delete removes a patient.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	_, err := r.gateway.Mutate(ctx, `DELETE FROM pacientes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

// Get returns a patient by id, or nil if absent.
func (r *PatientRepository) Get(ctx context.Context, id string) (*model.Patient, error) {
	rs, err := r.gateway.Read(ctx, `SELECT * FROM pacientes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if rs.Len() == 0 {
		return nil, nil
	}
	p := scanPatient(rs.Rows[0])
	return &p, nil
}

// List returns all patients ordered by name.
func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	rs, err := r.gateway.Read(ctx, `SELECT * FROM pacientes ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patients := make([]model.Patient, 0, rs.Len())
	for _, row := range rs.Rows {
		patients = append(patients, scanPatient(row))
	}
	return patients, nil
}

func scanPatient(row map[string]any) model.Patient {
	return model.Patient{
		ID:           rowString(row, "id"),
		Name:         rowString(row, "nome"),
		Phone:        rowString(row, "telefone"),
		Email:        rowString(row, "email"),
		BirthDate:    rowString(row, "nascimento"),
		TaxID:        rowString(row, "cpf"),
		Address:      rowString(row, "endereco"),
		Notes:        rowString(row, "observacoes"),
		RegisteredAt: rowString(row, "dataCadastro"),
	}
}
