// Package model defines the clinic's entities. Dates are stored as
// ISO-8601 strings (YYYY-MM-DD) the way the store keeps them; monetary
// amounts are decimals and must never be negative.
package model

import "github.com/shopspring/decimal"

// Patient is the root entity; appointments, questionnaires, and treatments
// reference it.
type Patient struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	BirthDate    string
	TaxID        string
	Address      string
	Notes        string
	RegisteredAt string
}

// Appointment is a scheduled visit for a patient.
type Appointment struct {
	ID        string
	PatientID string
	Date      string
	Time      string
	Type      string
	Status    string
	Duration  string
	Notes     string
}

// Questionnaire is the medical-history intake form, at most one per
// patient. Flags are tri-state: nil means unanswered. The identifying
// fields duplicate the patient record so the printed form is
// self-contained.
type Questionnaire struct {
	PatientID      string
	Name           string
	TaxID          string
	BirthDate      string
	Address        string
	PostalCode     string
	Phone          string
	EmergencyPhone string
	EmergencyName  string
	Email          string

	UnderMedicalTreatment     *bool
	UnderMedicalTreatmentNote string
	TakingMedication          *bool
	TakingMedicationNote      string
	HasAllergy                *bool
	HasAllergyNote            string
	Diabetic                  *bool
	HeartDisease              *bool
	Hypertensive              *bool
	Hemophiliac               *bool
	SwollenFeet               *bool
	PersistentCough           *bool
	AnesthesiaAllergy         *bool
	AnesthesiaAllergyNote     string
	HadAnesthesia             *bool
	HadHemorrhage             *bool
	HasAddiction              *bool
	HasAddictionNote          string
	Pregnant                  *bool
	Epileptic                 *bool
	OtherRemarks              *bool
	OtherRemarksNote          string

	ToothChartNotes string
}

// Treatment is a billed course of care.
type Treatment struct {
	ID            int64
	PatientID     string
	Date          string
	Description   string
	TotalValue    decimal.Decimal
	PaymentStatus string
}

// Payment is an installment against a treatment.
type Payment struct {
	ID          int64
	TreatmentID int64
	Date        string
	Amount      decimal.Decimal
	Method      string
}

// InventoryItem is a stocked supply.
type InventoryItem struct {
	ID              int64
	Name            string
	Category        string
	Quantity        int64
	MinimumQuantity int64
	SupplierName    string
	SupplierPhone   string
	SupplierAddress string
	UpdatedAt       string
	Notes           string
}

// InventoryPurchase is a restock record; deleting the item removes its
// purchase history.
type InventoryPurchase struct {
	ID       int64
	ItemID   int64
	Date     string
	Quantity int64
	LotValue decimal.Decimal
	Supplier string
}
