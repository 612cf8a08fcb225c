package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// QueryBuilder incrementally assembles a conjunctive WHERE clause with
// Postgres positional placeholders ($1..$N) and the matching ordered
// parameter list. One builder serves exactly one query; it is request-scoped
// and never shared.
//
// Invariant: the Nth condition added references exactly the parameter(s)
// appended at that step, so the placeholders of the final clause, read left
// to right, always line up with the parameter slice.
type QueryBuilder struct {
	conditions   []string
	params       []interface{}
	paramCounter int
}

// NewQueryBuilder creates an empty builder with the parameter counter at $1
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions:   []string{},
		params:       []interface{}{},
		paramCounter: 1,
	}
}

// AddSearchCondition adds a case-insensitive substring match against the
// customer name OR the phone number. The search value is bound once; both
// LIKE expressions reference the same placeholder, which Postgres resolves
// positionally against the single bound parameter.
func (qb *QueryBuilder) AddSearchCondition(search string) {
	search = strings.TrimSpace(search)
	if search == "" {
		return
	}

	qb.conditions = append(qb.conditions, fmt.Sprintf(
		"(LOWER(customer_name) LIKE $%d OR LOWER(phone_number) LIKE $%d)",
		qb.paramCounter, qb.paramCounter,
	))
	qb.params = append(qb.params, "%"+strings.ToLower(search)+"%")
	qb.paramCounter++
}

// AddMultiSelectFilter adds a set-membership condition on a categorical
// column. The whole value set is bound as a single array parameter, so one
// fragment and one parameter are added regardless of set size.
func (qb *QueryBuilder) AddMultiSelectFilter(column string, values []string) {
	if len(values) == 0 {
		return
	}

	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = ANY($%d)", column, qb.paramCounter))
	qb.params = append(qb.params, pq.Array(values))
	qb.paramCounter++
}

// AddTagsFilter adds an array-overlap condition: a row matches when its tag
// set shares at least one element with the given set.
func (qb *QueryBuilder) AddTagsFilter(tags []string) {
	if len(tags) == 0 {
		return
	}

	qb.conditions = append(qb.conditions, fmt.Sprintf("tags && $%d", qb.paramCounter))
	qb.params = append(qb.params, pq.Array(tags))
	qb.paramCounter++
}

// AddRangeFilter adds up to two independent conditions on a numeric column,
// min first, then max. A nil bound is skipped; a zero value is a real bound.
func (qb *QueryBuilder) AddRangeFilter(column string, min, max *int) {
	if min != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s >= $%d", column, qb.paramCounter))
		qb.params = append(qb.params, *min)
		qb.paramCounter++
	}
	if max != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s <= $%d", column, qb.paramCounter))
		qb.params = append(qb.params, *max)
		qb.paramCounter++
	}
}

// AddDateRangeFilter adds inclusive bounds on the occurrence date, start
// first, then end, each only when present.
func (qb *QueryBuilder) AddDateRangeFilter(start, end *time.Time) {
	if start != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("date >= $%d", qb.paramCounter))
		qb.params = append(qb.params, *start)
		qb.paramCounter++
	}
	if end != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("date <= $%d", qb.paramCounter))
		qb.params = append(qb.params, *end)
		qb.paramCounter++
	}
}

// BuildWhereClause joins the accumulated conditions with AND, in insertion
// order. Returns the empty string when no conditions were added.
func (qb *QueryBuilder) BuildWhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// Params returns the bound parameters in placeholder order
func (qb *QueryBuilder) Params() []interface{} {
	return qb.params
}

// NextParamIndex returns the next free 1-based placeholder index, so callers
// can append trailing parameters (LIMIT/OFFSET) without collisions.
func (qb *QueryBuilder) NextParamIndex() int {
	return qb.paramCounter
}
