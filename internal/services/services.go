package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/contenthub/internal/shared"
)

// query builds PostgREST query parameters.
type query struct {
	values url.Values
	// refine is set when the search pattern is wider than the term, so rows must be
	// rechecked in memory and the limit applied after that.
	refine bool
}

func newQuery(columns string) *query {
	q := &query{values: url.Values{}}
	q.values.Set("select", columns)
	return q
}

func (q *query) eq(column, value string) *query {
	q.values.Add(column, "eq."+value)
	return q
}

func (q *query) eqBool(column string, b bool) *query {
	return q.eq(column, strconv.FormatBool(b))
}

// contains matches rows whose array column contains value.
func (q *query) contains(column, value string) *query {
	q.values.Add(column, "cs.{"+quoteValue(value)+"}")
	return q
}

// search ORs a case-insensitive substring match over cols.
//
// PostgREST turns every * in a like pattern into %, quoted or not, so a literal * in term
// is sent as the single-character wildcard _ and the query is marked for refinement.
func (q *query) search(term string, cols ...string) *query {
	if term == "" {
		return q
	}
	escaped := shared.EscapeLike(term)
	if strings.Contains(escaped, "*") {
		escaped = strings.ReplaceAll(escaped, "*", "_")
		q.refine = true
	}
	pattern := quoteValue("*" + escaped + "*")
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("%s.ilike.%s", col, pattern)
	}
	q.values.Set("or", "("+strings.Join(parts, ",")+")")
	return q
}

func (q *query) order(spec string) *query {
	q.values.Set("order", spec)
	return q
}

// limit caps the rows PostgREST returns. It is skipped for refined searches.
func (q *query) limit(n int) *query {
	if n > 0 && !q.refine {
		q.values.Set("limit", strconv.Itoa(n))
	}
	return q
}

// literalSearch reports whether term needs the in-memory recheck described on [query.search].
func literalSearch(term string) bool {
	return strings.Contains(term, "*")
}

func (q *query) params() url.Values {
	return q.values
}

// quoteValue double-quotes a PostgREST filter value so reserved characters (,.:()) are literal.
func quoteValue(v string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
}
