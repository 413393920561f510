package checks

import (
	"fmt"
	"sort"

	"trusted-api/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists what one table lacks.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// Drifted returns the sorted names of tables that are not "ok".
func (r *SchemaReport) Drifted() []string {
	var names []string
	for name, tbl := range r.Tables {
		if tbl.Status != "ok" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// CheckSchema compares every model's gorm columns with the live database.
// Extra database columns are tolerated.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		table, expected, err := database.ExpectedColumns(db, model)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Tables[table] = TableReport{MissingColumns: []string{}, Status: "error"}
			report.Matched = false
			continue
		}

		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}
		if len(actual) == 0 {
			tbl.MissingColumns = expected
			tbl.Status = "missing"
			report.Tables[table] = tbl
			report.Matched = false
			continue
		}

		present := make(map[string]struct{}, len(actual))
		for _, col := range actual {
			present[col.Field] = struct{}{}
		}
		for _, col := range expected {
			if _, ok := present[col]; !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, col)
			}
		}
		if len(tbl.MissingColumns) > 0 {
			tbl.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
