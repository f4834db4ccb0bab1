package db

import (
	"context"
	"fmt"

	"github.com/clinicadesk/clinicadesk/internal/apperrors"
)

// Gateway is the narrow statement-execution surface over the store. It
// performs no statement validation or whitelisting; callers must always
// parameterize variable data. Engine failures propagate with the engine's
// message intact.
type Gateway struct {
	db *DB
}

// NewGateway creates a gateway over the given store.
func NewGateway(db *DB) *Gateway {
	return &Gateway{db: db}
}

// MutateResult carries mutation metadata. LastInsertID is meaningful only
// for tables with an auto-incrementing key.
type MutateResult struct {
	LastInsertID int64
	RowsAffected int64
}

// RecordSet is a uniform result set. Columns preserves the engine's column
// order, which map iteration would lose; consumers that care about ordering
// (the CSV codec) must use it instead of ranging over row keys.
type RecordSet struct {
	Columns []string
	Rows    []map[string]any
}

// Len returns the number of rows.
func (rs *RecordSet) Len() int {
	return len(rs.Rows)
}

// Mutate executes an insert, update, or delete statement.
func (g *Gateway) Mutate(ctx context.Context, stmt string, params ...any) (MutateResult, error) {
	if !g.db.Ready() {
		return MutateResult{}, apperrors.ErrNotReady
	}

	res, err := g.db.sql.ExecContext(ctx, stmt, params...)
	if err != nil {
		return MutateResult{}, classify(err)
	}

	lastID, err := res.LastInsertId()
	if err != nil {
		return MutateResult{}, fmt.Errorf("failed to read last insert id: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return MutateResult{}, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return MutateResult{LastInsertID: lastID, RowsAffected: affected}, nil
}

// Read executes a select statement and returns the full result set. Zero
// matching rows yield an empty RecordSet, not an error.
func (g *Gateway) Read(ctx context.Context, stmt string, params ...any) (*RecordSet, error) {
	if !g.db.Ready() {
		return nil, apperrors.ErrNotReady
	}

	rows, err := g.db.sql.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	rs := &RecordSet{Columns: columns, Rows: []map[string]any{}}

	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			// The driver hands back []byte for some TEXT affinities;
			// normalize so consumers see plain strings.
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		rs.Rows = append(rs.Rows, record)
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return rs, nil
}
