package repositories

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
)

// QueryBuilderSuite defines the test suite for QueryBuilder
type QueryBuilderSuite struct {
	suite.Suite
	qb *QueryBuilder
}

// SetupTest runs before each test in the suite
func (s *QueryBuilderSuite) SetupTest() {
	s.qb = NewQueryBuilder()
}

// TestQueryBuilderSuite runs the test suite
func TestQueryBuilderSuite(t *testing.T) {
	suite.Run(t, new(QueryBuilderSuite))
}

func (s *QueryBuilderSuite) TestEmptyBuilder() {
	s.Equal("", s.qb.BuildWhereClause())
	s.Empty(s.qb.Params())
	s.Equal(1, s.qb.NextParamIndex())
}

func (s *QueryBuilderSuite) TestAddSearchCondition() {
	s.qb.AddSearchCondition("Ana")

	s.Equal(
		"WHERE (LOWER(customer_name) LIKE $1 OR LOWER(phone_number) LIKE $1)",
		s.qb.BuildWhereClause(),
	)
	// Both LIKE expressions reference the same placeholder, so only one
	// parameter is bound and the counter advances by one.
	s.Equal([]interface{}{"%ana%"}, s.qb.Params())
	s.Equal(2, s.qb.NextParamIndex())
}

func (s *QueryBuilderSuite) TestAddSearchCondition_EmptyAndWhitespace() {
	s.qb.AddSearchCondition("")
	s.qb.AddSearchCondition("   ")

	s.Equal("", s.qb.BuildWhereClause())
	s.Empty(s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddSearchCondition_TrimsBeforeMatching() {
	s.qb.AddSearchCondition("  Ana  ")

	s.Equal([]interface{}{"%ana%"}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddMultiSelectFilter() {
	s.qb.AddMultiSelectFilter("customer_region", []string{"North", "South"})

	s.Equal("WHERE customer_region = ANY($1)", s.qb.BuildWhereClause())
	s.Equal([]interface{}{pq.Array([]string{"North", "South"})}, s.qb.Params())
	s.Equal(2, s.qb.NextParamIndex())
}

func (s *QueryBuilderSuite) TestAddMultiSelectFilter_EmptySet() {
	s.qb.AddMultiSelectFilter("gender", nil)
	s.qb.AddMultiSelectFilter("gender", []string{})

	s.Equal("", s.qb.BuildWhereClause())
	s.Empty(s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddTagsFilter() {
	s.qb.AddTagsFilter([]string{"premium", "sale"})

	s.Equal("WHERE tags && $1", s.qb.BuildWhereClause())
	s.Equal([]interface{}{pq.Array([]string{"premium", "sale"})}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddTagsFilter_EmptySet() {
	s.qb.AddTagsFilter(nil)

	s.Equal("", s.qb.BuildWhereClause())
}

func (s *QueryBuilderSuite) TestAddRangeFilter_BothBounds() {
	min, max := 18, 30
	s.qb.AddRangeFilter("age", &min, &max)

	s.Equal("WHERE age >= $1 AND age <= $2", s.qb.BuildWhereClause())
	s.Equal([]interface{}{18, 30}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddRangeFilter_MinOnly() {
	min := 21
	s.qb.AddRangeFilter("age", &min, nil)

	s.Equal("WHERE age >= $1", s.qb.BuildWhereClause())
	s.Equal([]interface{}{21}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddRangeFilter_MaxOnly() {
	max := 65
	s.qb.AddRangeFilter("age", nil, &max)

	s.Equal("WHERE age <= $1", s.qb.BuildWhereClause())
	s.Equal([]interface{}{65}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddRangeFilter_ZeroIsARealBound() {
	min := 0
	s.qb.AddRangeFilter("age", &min, nil)

	s.Equal("WHERE age >= $1", s.qb.BuildWhereClause())
	s.Equal([]interface{}{0}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddDateRangeFilter() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	s.qb.AddDateRangeFilter(&start, &end)

	s.Equal("WHERE date >= $1 AND date <= $2", s.qb.BuildWhereClause())
	s.Equal([]interface{}{start, end}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestAddDateRangeFilter_StartOnly() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.qb.AddDateRangeFilter(&start, nil)

	s.Equal("WHERE date >= $1", s.qb.BuildWhereClause())
	s.Equal([]interface{}{start}, s.qb.Params())
}

func (s *QueryBuilderSuite) TestConditionsJoinInInsertionOrder() {
	min, max := 18, 30
	s.qb.AddSearchCondition("ana")
	s.qb.AddMultiSelectFilter("customer_region", []string{"North"})
	s.qb.AddTagsFilter([]string{"premium"})
	s.qb.AddRangeFilter("age", &min, &max)

	s.Equal(
		"WHERE (LOWER(customer_name) LIKE $1 OR LOWER(phone_number) LIKE $1)"+
			" AND customer_region = ANY($2)"+
			" AND tags && $3"+
			" AND age >= $4 AND age <= $5",
		s.qb.BuildWhereClause(),
	)
	s.Len(s.qb.Params(), 5)
	s.Equal(6, s.qb.NextParamIndex())
}
