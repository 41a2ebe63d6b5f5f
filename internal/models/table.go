package models

import (
	"fmt"
	"strings"

	"github.com/tablewash/tablewash/internal/common/errorwrapper"
)

// TableRef identifies a warehouse-resident table as a
// (project, dataset, table) triple. Value type, immutable once built.
type TableRef struct {
	Project string
	Dataset string
	Table   string
}

// String returns the fully qualified `project.dataset.table` identifier.
func (r TableRef) String() string {
	return fmt.Sprintf("%s.%s.%s", r.Project, r.Dataset, r.Table)
}

// IsZero reports whether any component of the reference is missing.
func (r TableRef) IsZero() bool {
	return r.Project == "" || r.Dataset == "" || r.Table == ""
}

// ParseTableRef parses a `project.dataset.table` identifier into a TableRef.
func ParseTableRef(id string) (TableRef, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return TableRef{}, errorwrapper.NewValidationError("table_ref", id, "expected project.dataset.table")
	}
	for _, p := range parts {
		if p == "" {
			return TableRef{}, errorwrapper.NewValidationError("table_ref", id, "empty component in table reference")
		}
	}
	return TableRef{Project: parts[0], Dataset: parts[1], Table: parts[2]}, nil
}

// Table is the tabular payload exchanged with the redaction service:
// an ordered header list and rows of string-typed cells. Column alignment
// is positional; header order must survive the full round trip.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table with the given header order.
func NewTable(headers []string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AppendRow appends a row of cell values. The caller is responsible for
// keeping the cell count aligned with the header count.
func (t *Table) AppendRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// NumRows returns the number of rows in the payload.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of header entries.
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// IsEmpty reports whether the table holds no rows.
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
