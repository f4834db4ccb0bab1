package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinicadesk/clinicadesk"
	"github.com/clinicadesk/clinicadesk/internal/apperrors"
	"github.com/clinicadesk/clinicadesk/internal/config"
	"github.com/clinicadesk/clinicadesk/internal/export"
	"github.com/clinicadesk/clinicadesk/internal/render"
)

var (
	configPath string
	dbPath     string
	logLevel   string

	exportDest    string
	exportFormats string

	renderOutput    string
	renderTreatment int64
	renderPatient   string
)

var rootCmd = &cobra.Command{
	Use:   "clinicadesk",
	Short: "Clinic data core: records, ledgers, inventory, and backup export",
	Long: `clinicadesk manages the clinic's local SQLite store and exposes its
data operations on the command line: backup export, generic queries for
tooling, and print-document rendering.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full backup snapshot to a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		app, err := openApp(ctx, exportFormats)
		if err != nil {
			return err
		}
		defer app.Close()

		dest := filepath.Join(exportDest, export.DefaultFileName(time.Now().Format("2006-01-02")))
		dir, err := app.ExportBackup(ctx, export.FixedDestination(dest))
		if errors.Is(err, apperrors.ErrCancelled) {
			fmt.Println("Exportação cancelada pelo usuário.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("erro ao gerar backup: %w", err)
		}
		fmt.Printf("Backup salvo com sucesso na pasta: %s\n", dir)
		return nil
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <statement> [param...]",
	Short: "Run a parameterized SELECT and print the result as CSV",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		app, err := openApp(ctx, "")
		if err != nil {
			return err
		}
		defer app.Close()

		rs, err := app.Gateway.Read(ctx, args[0], toParams(args[1:])...)
		if err != nil {
			return err
		}
		os.Stdout.Write(export.EncodeCSV(rs, nil))
		fmt.Println()
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <statement> [param...]",
	Short: "Run a parameterized mutation and print the result metadata",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		app, err := openApp(ctx, "")
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.Gateway.Mutate(ctx, args[0], toParams(args[1:])...)
		if err != nil {
			return err
		}
		fmt.Printf("last insert id: %d, rows affected: %d\n", res.LastInsertID, res.RowsAffected)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a print document as HTML",
}

var renderContractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Render the treatment contract for --treatment",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		app, err := openApp(ctx, "")
		if err != nil {
			return err
		}
		defer app.Close()

		treatment, err := app.Treatments.Get(ctx, renderTreatment)
		if err != nil {
			return err
		}
		if treatment == nil {
			return fmt.Errorf("treatment %d not found", renderTreatment)
		}
		patient, err := app.Patients.Get(ctx, treatment.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return fmt.Errorf("patient %s not found", treatment.PatientID)
		}

		html, err := render.Contract(render.ContractData{
			PatientName:  patient.Name,
			PatientTaxID: patient.TaxID,
			Description:  treatment.Description,
			TotalValue:   treatment.TotalValue,
			Date:         treatment.Date,
		})
		if err != nil {
			return err
		}
		return writeOutput(html)
	},
}

var renderAnamneseCmd = &cobra.Command{
	Use:   "anamnese",
	Short: "Render the questionnaire form for --patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		app, err := openApp(ctx, "")
		if err != nil {
			return err
		}
		defer app.Close()

		questionnaire, err := app.Questionnaires.Get(ctx, renderPatient)
		if err != nil {
			return err
		}
		if questionnaire == nil {
			return fmt.Errorf("no questionnaire for patient %s", renderPatient)
		}

		html, err := render.QuestionnaireForm(*questionnaire)
		if err != nil {
			return err
		}
		return writeOutput(html)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (default: documents folder)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	exportCmd.Flags().StringVarP(&exportDest, "dest", "d", "", "Destination directory")
	exportCmd.Flags().StringVarP(&exportFormats, "formats", "f", "csv", "Backup formats: csv, xlsx, or csv,xlsx")
	exportCmd.MarkFlagRequired("dest")

	renderContractCmd.Flags().Int64Var(&renderTreatment, "treatment", 0, "Treatment id")
	renderContractCmd.MarkFlagRequired("treatment")
	renderAnamneseCmd.Flags().StringVar(&renderPatient, "patient", "", "Patient id")
	renderAnamneseCmd.MarkFlagRequired("patient")
	renderCmd.PersistentFlags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
	renderCmd.AddCommand(renderContractCmd, renderAnamneseCmd)

	rootCmd.AddCommand(exportCmd, queryCmd, execCmd, renderCmd)
}

func openApp(ctx context.Context, formats string) (*clinicadesk.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if formats != "" {
		cfg.Export.Formats = formats
	}
	return clinicadesk.Open(ctx, cfg)
}

func toParams(args []string) []any {
	params := make([]any, len(args))
	for i, arg := range args {
		params[i] = arg
	}
	return params
}

func writeOutput(blob []byte) error {
	if renderOutput == "" {
		_, err := os.Stdout.Write(blob)
		return err
	}
	return os.WriteFile(renderOutput, blob, 0644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
