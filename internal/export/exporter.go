package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/clinicadesk/clinicadesk/internal/apperrors"
	"github.com/clinicadesk/clinicadesk/internal/db"
)

// DestinationPicker obtains the backup destination from the user. The
// desktop shell backs it with a save dialog; the CLI with a flag. An empty
// path with a nil error means the user cancelled.
type DestinationPicker interface {
	Pick(ctx context.Context) (string, error)
}

// FixedDestination is a DestinationPicker that always returns the same path.
type FixedDestination string

// Pick returns the fixed path.
func (f FixedDestination) Pick(_ context.Context) (string, error) {
	return string(f), nil
}

// Format selects a backup artifact kind.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Exporter writes the full backup snapshot. Queries run sequentially; all
// files land in a staging directory and are renamed into the destination
// only after every one of them succeeded, so a failure never leaves a
// partial backup behind.
type Exporter struct {
	gateway *db.Gateway
	picker  DestinationPicker
	formats []string
	log     *zap.Logger
}

// NewExporter creates an exporter. formats defaults to CSV when empty.
func NewExporter(gateway *db.Gateway, picker DestinationPicker, formats []string, logger *zap.Logger) *Exporter {
	if len(formats) == 0 {
		formats = []string{FormatCSV}
	}
	return &Exporter{gateway: gateway, picker: picker, formats: formats, log: logger}
}

// entitySet pairs a profile with its query result.
type entitySet struct {
	profile Profile
	records *db.RecordSet
}

// Run exports the snapshot and returns the destination directory. A
// dismissed destination prompt returns apperrors.ErrCancelled without
// touching the filesystem.
func (e *Exporter) Run(ctx context.Context) (string, error) {
	chosen, err := e.picker.Pick(ctx)
	if err != nil {
		return "", err
	}
	if chosen == "" {
		return "", apperrors.ErrCancelled
	}
	destDir := filepath.Dir(chosen)

	sets, err := e.collect(ctx)
	if err != nil {
		return "", err
	}

	staging, err := os.MkdirTemp(destDir, ".clinicadesk-backup-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	defer os.RemoveAll(staging)

	var names []string
	for _, format := range e.formats {
		switch format {
		case FormatCSV:
			csvNames, err := writeCSVFiles(staging, sets)
			if err != nil {
				return "", err
			}
			names = append(names, csvNames...)
		case FormatXLSX:
			if err := writeWorkbook(filepath.Join(staging, workbookName), sets); err != nil {
				return "", err
			}
			names = append(names, workbookName)
		default:
			return "", fmt.Errorf("unsupported export format: %s", format)
		}
	}

	// Every artifact succeeded; move the set into place. Existing files of
	// the same name are overwritten.
	for _, name := range names {
		if err := os.Rename(filepath.Join(staging, name), filepath.Join(destDir, name)); err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrIO, err)
		}
	}

	e.log.Info("backup exported",
		zap.String("dir", destDir),
		zap.Strings("formats", e.formats),
		zap.Int("files", len(names)))
	return destDir, nil
}

// collect runs the seven denormalizing queries, one after another. A failure
// aborts the remaining queries.
func (e *Exporter) collect(ctx context.Context) ([]entitySet, error) {
	sets := make([]entitySet, 0, len(Profiles))
	for _, profile := range Profiles {
		rs, err := e.gateway.Read(ctx, profile.Query)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", profile.Name, err)
		}
		sets = append(sets, entitySet{profile: profile, records: rs})
	}
	return sets, nil
}

func writeCSVFiles(dir string, sets []entitySet) ([]string, error) {
	names := make([]string, 0, len(sets))
	for _, set := range sets {
		name := set.profile.Name + ".csv"
		blob := EncodeCSV(set.records, set.profile.Exclude)
		if err := os.WriteFile(filepath.Join(dir, name), blob, 0644); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrIO, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// DefaultFileName suggests a destination file name for the save prompt.
func DefaultFileName(date string) string {
	return fmt.Sprintf("backup-clinica-%s.csv", date)
}

// ParseFormats splits a comma-separated format list ("csv,xlsx").
func ParseFormats(s string) ([]string, error) {
	if s == "" {
		return []string{FormatCSV}, nil
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, part := range parts {
		format := strings.TrimSpace(part)
		if format != FormatCSV && format != FormatXLSX {
			return nil, fmt.Errorf("unsupported export format: %s", format)
		}
		formats = append(formats, format)
	}
	return formats, nil
}
