package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"sales-analytics/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// salesRowColumns mirrors the projection order of the list query
var salesRowColumns = []string{
	"id", "transaction_id", "date", "customer_id", "customer_name",
	"phone_number", "gender", "age", "customer_region", "customer_type",
	"product_id", "product_name", "brand", "product_category", "tags",
	"quantity", "price_per_unit", "discount_percentage", "total_amount",
	"final_amount", "payment_method", "order_status", "delivery_type",
	"store_id", "store_location", "salesperson_id", "employee_name",
}

// SalesRepositorySuite defines the test suite for the sales repository
type SalesRepositorySuite struct {
	suite.Suite
	mockDB *sql.DB
	mock   sqlmock.Sqlmock
	repo   SalesRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *SalesRepositorySuite) SetupTest() {
	mockDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.mockDB = mockDB
	s.mock = mock

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: mockDB,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.repo, err = NewSalesRepository(gormDB)
	s.Require().NoError(err)
}

// TearDownTest runs after each test in the suite
func (s *SalesRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.mockDB.Close()
}

// TestSalesRepositorySuite runs the test suite
func TestSalesRepositorySuite(t *testing.T) {
	suite.Run(t, new(SalesRepositorySuite))
}

func fullRow() []driver.Value {
	return []driver.Value{
		int64(1), "TXN-0001", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"CUST-42", "Ana Souza", "+55 11 91234-5678", "Female", int64(29),
		"North", "Returning", "PROD-7", "Wireless Mouse", "Acme",
		"Electronics", "{premium,new}", int64(3), "49.90", "10", "149.70",
		"134.73", "Credit Card", "Completed", "Delivery", "ST-3",
		"Sao Paulo", "EMP-12", "Carlos Lima",
	}
}

func (s *SalesRepositorySuite) TestList_NoFilters() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales_transactions")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM sales_transactions  ORDER BY date DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(salesRowColumns).AddRow(fullRow()...))

	filters := models.SalesFilters{
		SortBy:    models.SortKeyDate,
		SortOrder: models.SortOrderDesc,
		Page:      1,
		Limit:     10,
	}

	transactions, total, err := s.repo.List(filters)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)

	t := transactions[0]
	s.Equal("TXN-0001", t.TransactionID)
	s.Equal("Ana Souza", t.CustomerName)
	s.Require().NotNil(t.Age)
	s.Equal(29, *t.Age)
	s.Equal(pq.StringArray{"premium", "new"}, t.Tags)
	s.Equal(3, t.Quantity)
	s.True(t.TotalAmount.Equal(decimal.NewFromFloat(149.70)))
	s.True(t.FinalAmount.Equal(decimal.NewFromFloat(134.73)))
}

func (s *SalesRepositorySuite) TestList_FiltersBindInOrderWithTrailingPaging() {
	ageMin, ageMax := 18, 30
	filters := models.SalesFilters{
		Regions:   []string{"North", "South"},
		AgeMin:    &ageMin,
		AgeMax:    &ageMax,
		SortBy:    models.SortKeyDate,
		SortOrder: models.SortOrderDesc,
		Page:      2,
		Limit:     10,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM sales_transactions WHERE customer_region = ANY($1) AND age >= $2 AND age <= $3",
	)).
		WithArgs(pq.Array([]string{"North", "South"}), 18, 30).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))

	// Limit and offset land on the two indices after the filter parameters.
	s.mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE customer_region = ANY($1) AND age >= $2 AND age <= $3 ORDER BY date DESC LIMIT $4 OFFSET $5",
	)).
		WithArgs(pq.Array([]string{"North", "South"}), 18, 30, 10, 10).
		WillReturnRows(sqlmock.NewRows(salesRowColumns).AddRow(fullRow()...))

	transactions, total, err := s.repo.List(filters)

	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(transactions, 1)
}

func (s *SalesRepositorySuite) TestList_SearchBindsOneParameterTwice() {
	filters := models.SalesFilters{
		Search:    "Ana",
		SortBy:    models.SortKeyQuantity,
		SortOrder: models.SortOrderAsc,
		Page:      1,
		Limit:     5,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE (LOWER(customer_name) LIKE $1 OR LOWER(phone_number) LIKE $1)",
	)).
		WithArgs("%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY quantity ASC LIMIT $2 OFFSET $3")).
		WithArgs("%ana%", 5, 0).
		WillReturnRows(sqlmock.NewRows(salesRowColumns))

	transactions, total, err := s.repo.List(filters)

	s.NoError(err)
	s.Equal(int64(0), total)
	s.Empty(transactions)
}

func (s *SalesRepositorySuite) TestList_NullColumnsScanToZeroValues() {
	row := []driver.Value{
		int64(7), nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
		nil, nil,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	s.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date DESC")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(salesRowColumns).AddRow(row...))

	filters := models.SalesFilters{
		SortBy:    models.SortKeyDate,
		SortOrder: models.SortOrderDesc,
		Page:      1,
		Limit:     10,
	}

	transactions, _, err := s.repo.List(filters)

	s.NoError(err)
	s.Require().Len(transactions, 1)

	t := transactions[0]
	s.Equal(int64(7), t.ID)
	s.Equal("", t.CustomerName)
	s.Nil(t.Age)
	s.Zero(t.Quantity)
	s.True(t.TotalAmount.IsZero())
}

func (s *SalesRepositorySuite) TestList_CountErrorWrapsDataAccessError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnError(errors.New("connection reset"))

	filters := models.SalesFilters{
		SortBy:    models.SortKeyDate,
		SortOrder: models.SortOrderDesc,
		Page:      1,
		Limit:     10,
	}

	_, _, err := s.repo.List(filters)

	var dataErr *DataAccessError
	s.Require().ErrorAs(err, &dataErr)
	s.Equal("count", dataErr.Op)
}

func (s *SalesRepositorySuite) TestStatistics_ZeroMatches() {
	s.mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(quantity), 0)")).
		WithArgs(pq.Array([]string{"Books"})).
		WillReturnRows(sqlmock.NewRows([]string{"total_units", "total_amount", "total_discount"}).
			AddRow(int64(0), "0", "0"))

	stats, err := s.repo.Statistics(models.SalesFilters{Categories: []string{"Books"}})

	s.NoError(err)
	s.Equal(int64(0), stats.TotalUnits)
	s.True(stats.TotalAmount.IsZero())
	s.True(stats.TotalDiscount.IsZero())
}

func (s *SalesRepositorySuite) TestStatistics_SumsOverFilteredRows() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		"FROM sales_transactions WHERE customer_region = ANY($1)",
	)).
		WithArgs(pq.Array([]string{"North"})).
		WillReturnRows(sqlmock.NewRows([]string{"total_units", "total_amount", "total_discount"}).
			AddRow(int64(57), "12345.50", "615.25"))

	stats, err := s.repo.Statistics(models.SalesFilters{Regions: []string{"North"}})

	s.NoError(err)
	s.Equal(int64(57), stats.TotalUnits)
	s.True(stats.TotalAmount.Equal(decimal.NewFromFloat(12345.50)))
	s.True(stats.TotalDiscount.Equal(decimal.NewFromFloat(615.25)))
}

func (s *SalesRepositorySuite) TestStatistics_QueryError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(quantity), 0)")).
		WillReturnError(errors.New("relation does not exist"))

	stats, err := s.repo.Statistics(models.SalesFilters{})

	var dataErr *DataAccessError
	s.Require().ErrorAs(err, &dataErr)
	s.Equal("statistics", dataErr.Op)
	s.Equal(models.ZeroSalesStatistics(), stats)
}

func (s *SalesRepositorySuite) TestFilterOptions() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT customer_region")).
		WillReturnRows(sqlmock.NewRows([]string{"customer_region"}).AddRow("North").AddRow("South"))
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT gender")).
		WillReturnRows(sqlmock.NewRows([]string{"gender"}).AddRow("Female").AddRow("Male"))
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT product_category")).
		WillReturnRows(sqlmock.NewRows([]string{"product_category"}).AddRow("Electronics"))
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT payment_method")).
		WillReturnRows(sqlmock.NewRows([]string{"payment_method"}).AddRow("Cash").AddRow("Credit Card"))
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT UNNEST(tags) AS tag")).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("new").AddRow("premium"))

	options, err := s.repo.FilterOptions()

	s.NoError(err)
	s.Equal([]string{"North", "South"}, options.Regions)
	s.Equal([]string{"Female", "Male"}, options.Genders)
	s.Equal([]string{"Electronics"}, options.Categories)
	s.Equal([]string{"Cash", "Credit Card"}, options.PaymentMethods)
	s.Equal([]string{"new", "premium"}, options.Tags)
}

func (s *SalesRepositorySuite) TestFilterOptions_QueryError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT customer_region")).
		WillReturnError(errors.New("timeout"))

	_, err := s.repo.FilterOptions()

	var dataErr *DataAccessError
	s.Require().ErrorAs(err, &dataErr)
	s.Equal("filter-options", dataErr.Op)
}

func (s *SalesRepositorySuite) TestCreateBatch_EmptyBatchIsANoop() {
	err := s.repo.CreateBatch(nil)
	s.NoError(err)
}

func (s *SalesRepositorySuite) TestTruncate() {
	s.mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE sales_transactions RESTART IDENTITY")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s.NoError(s.repo.Truncate())
}

func (s *SalesRepositorySuite) TestTruncate_Error() {
	s.mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE sales_transactions")).
		WillReturnError(errors.New("permission denied"))

	err := s.repo.Truncate()
	s.ErrorContains(err, "failed to truncate")
}
