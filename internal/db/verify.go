package db

import (
	"context"
	"fmt"
)

// TableReport describes one required table
type TableReport struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
	Rows   int64  `json:"rows"`
	Error  string `json:"error,omitempty"`
}

var requiredTables = []string{collectionTable, catalogTable}

// VerifyTables reports, for each required table, whether it exists and how many rows it holds
func (s *PostgresStore) VerifyTables(ctx context.Context) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(requiredTables)+1)

	for _, table := range requiredTables {
		report := TableReport{Name: table}

		var count int
		err := s.db.QueryRowContext(ctx, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1`, table).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", table, err)
		}
		report.Exists = count == 1

		if report.Exists {
			// table names come from requiredTables, never from input
			if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&report.Rows); err != nil {
				report.Error = err.Error()
			}
		}
		reports = append(reports, report)
	}

	var fnCount int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM information_schema.routines
		WHERE routine_schema = 'public' AND routine_name = 'update_updated_at_column'`).Scan(&fnCount)
	if err != nil {
		return nil, fmt.Errorf("failed to check trigger function: %w", err)
	}
	reports = append(reports, TableReport{Name: "update_updated_at_column()", Exists: fnCount > 0})

	return reports, nil
}

// AllPresent reports whether every checked object exists
func AllPresent(reports []TableReport) bool {
	for _, r := range reports {
		if !r.Exists {
			return false
		}
	}
	return true
}
