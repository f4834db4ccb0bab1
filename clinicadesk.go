// Package clinicadesk is the data core of a desktop clinic-management
// application: patient records, appointment scheduling, treatment and
// payment ledgers, inventory tracking, the medical-history questionnaire,
// and a denormalized CSV/XLSX backup of the whole store.
//
// Persistence is a single SQLite file, by default in the user's documents
// folder. The embedded-browser presentation layer talks to this core
// through two surfaces: typed per-entity repositories, and a generic
// parameterized query gateway for statements the repositories do not cover.
//
// # Quick Start
//
//	cfg, _ := config.Load("")
//	app, err := clinicadesk.Open(context.Background(), cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//
//	patient, err := app.Patients.Create(ctx, model.Patient{Name: "Maria Souza"})
//
// The store is provisioned inside Open; no operation is accepted before
// provisioning completes.
package clinicadesk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clinicadesk/clinicadesk/internal/config"
	"github.com/clinicadesk/clinicadesk/internal/db"
	"github.com/clinicadesk/clinicadesk/internal/export"
	"github.com/clinicadesk/clinicadesk/internal/logging"
	"github.com/clinicadesk/clinicadesk/internal/repo"
)

// App owns the database handle and exposes the core's surfaces. It is safe
// to keep for the lifetime of the process; Close releases the store.
type App struct {
	// Gateway is the generic statement surface. The presentation layer owns
	// the SQL text it submits here; variable data must always be
	// parameterized.
	Gateway *db.Gateway

	// Typed repositories, one per entity.
	Patients       *repo.PatientRepository
	Appointments   *repo.AppointmentRepository
	Questionnaires *repo.QuestionnaireRepository
	Treatments     *repo.TreatmentRepository
	Payments       *repo.PaymentRepository
	Inventory      *repo.InventoryRepository

	cfg   *config.Config
	log   *zap.Logger
	store *db.DB
}

// Open opens the database file named by cfg, provisions the schema, and
// wires the repositories. Opening fails fast if the file cannot be opened
// or provisioning fails; there is no degraded half-open state.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	store, err := db.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return nil, err
	}

	if err := store.Provision(ctx); err != nil {
		store.Close()
		return nil, err
	}

	gateway := db.NewGateway(store)

	return &App{
		Gateway:        gateway,
		Patients:       repo.NewPatientRepository(gateway),
		Appointments:   repo.NewAppointmentRepository(gateway),
		Questionnaires: repo.NewQuestionnaireRepository(gateway),
		Treatments:     repo.NewTreatmentRepository(gateway),
		Payments:       repo.NewPaymentRepository(gateway),
		Inventory:      repo.NewInventoryRepository(gateway),
		cfg:            cfg,
		log:            logger,
		store:          store,
	}, nil
}

// Close releases the database handle. The App must not be used afterwards.
func (a *App) Close() error {
	a.log.Sync()
	return a.store.Close()
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.log
}

// ExportBackup writes the full denormalized snapshot of the store. The
// picker supplies the destination (a save dialog in the desktop shell, a
// flag in the CLI); a dismissed prompt yields apperrors.ErrCancelled and
// touches nothing. On success the destination directory is returned.
func (a *App) ExportBackup(ctx context.Context, picker export.DestinationPicker) (string, error) {
	formats, err := export.ParseFormats(a.cfg.Export.Formats)
	if err != nil {
		return "", err
	}
	exporter := export.NewExporter(a.Gateway, picker, formats, a.log)
	return exporter.Run(ctx)
}
