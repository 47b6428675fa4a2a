package store

import (
	"fmt"
	"strings"
)

// setClause pairs a column with the value to set. Column names come from the
// fixed tables declared in this package, never from caller input, so they are
// safe to splice into statement text.
type setClause struct {
	column string
	value  any
	set    bool
}

// buildUpdate assembles a single UPDATE touching only the set columns, with
// contiguous positional parameters starting at $1 and the row id last. It
// reports ok=false when no column is set; the caller must then skip storage
// entirely.
func buildUpdate(table, returning string, clauses []setClause, id int64) (string, []any, bool) {
	var (
		sets []string
		args []any
		idx  = 1
	)

	for _, c := range clauses {
		if !c.set {
			continue
		}

		sets = append(sets, fmt.Sprintf("%s = $%d", c.column, idx))
		args = append(args, c.value)
		idx++
	}

	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), idx, returning)

	return query, args, true
}
