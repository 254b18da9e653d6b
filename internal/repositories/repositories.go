package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/contenthub/internal/shared"
)

// scanner is satisfied by both [sql.Row] and [sql.Rows].
type scanner interface {
	Scan(dest ...any) error
}

// conditions accumulates AND-ed WHERE clauses and their arguments.
type conditions struct {
	clauses []string
	args    []any
}

func newConditions(base string) *conditions {
	return &conditions{clauses: []string{base}}
}

func (c *conditions) add(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// search adds a case-insensitive literal substring match over cols, OR-ed together.
func (c *conditions) search(term string, cols ...string) {
	if term == "" {
		return
	}
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("instr(fold(%s), fold(?)) > 0", col)
		c.args = append(c.args, term)
	}
	c.clauses = append(c.clauses, "("+strings.Join(parts, " OR ")+")")
}

func (c *conditions) where() string {
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

// limit appends a LIMIT clause when n is positive.
func (c *conditions) limit(query string, n int) string {
	if n <= 0 {
		return query
	}
	c.args = append(c.args, n)
	return query + " LIMIT ?"
}

func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// queryError classifies a failed read; sql.ErrNoRows becomes [shared.ErrNotFound].
func queryError(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", shared.ErrNotFound, what)
	}
	return fmt.Errorf("%w: %s: %w", shared.ErrBackend, what, err)
}

// collectStrings reads a single text column from every row.
func collectStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
