package repositories

import (
	"database/sql"
	"fmt"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// salesColumns is the full projection of the sales fact table, in the order
// scanSalesRow consumes it.
const salesColumns = `id,
		transaction_id,
		date,
		customer_id,
		customer_name,
		phone_number,
		gender,
		age,
		customer_region,
		customer_type,
		product_id,
		product_name,
		brand,
		product_category,
		tags,
		quantity,
		price_per_unit,
		discount_percentage,
		total_amount,
		final_amount,
		payment_method,
		order_status,
		delivery_type,
		store_id,
		store_location,
		salesperson_id,
		employee_name`

// salesRepository implements SalesRepositoryInterface. Read-path queries go
// through database/sql with positional placeholders built by QueryBuilder;
// the batch write path uses the GORM handle for transactional inserts.
type salesRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// NewSalesRepository creates a new sales repository over the shared
// connection pool
func NewSalesRepository(db *gorm.DB) (SalesRepositoryInterface, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	return &salesRepository{
		db:    db,
		sqlDB: sqlDB,
	}, nil
}

// buildFilterQuery accumulates every active filter dimension, in a fixed
// order so placeholder indices are deterministic for a given filter set.
func buildFilterQuery(filters models.SalesFilters) *QueryBuilder {
	qb := NewQueryBuilder()

	qb.AddSearchCondition(filters.Search)
	qb.AddMultiSelectFilter("customer_region", filters.Regions)
	qb.AddMultiSelectFilter("gender", filters.Genders)
	qb.AddMultiSelectFilter("product_category", filters.Categories)
	qb.AddMultiSelectFilter("payment_method", filters.PaymentMethods)
	qb.AddTagsFilter(filters.Tags)
	qb.AddRangeFilter("age", filters.AgeMin, filters.AgeMax)
	qb.AddDateRangeFilter(filters.StartDate, filters.EndDate)

	return qb
}

// List retrieves one page of matching rows ordered by the requested sort
// key, plus the total matching count. Limit and offset are bound as the two
// final parameters after all filter-derived ones.
func (r *salesRepository) List(filters models.SalesFilters) ([]models.SalesTransaction, int64, error) {
	qb := buildFilterQuery(filters)
	whereClause := qb.BuildWhereClause()
	params := qb.Params()

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM sales_transactions %s", whereClause)

	var total int64
	if err := r.sqlDB.QueryRow(countQuery, params...).Scan(&total); err != nil {
		return nil, 0, newDataAccessError("count", err)
	}

	offset := (filters.Page - 1) * filters.Limit

	dataQuery := fmt.Sprintf(
		`SELECT %s FROM sales_transactions %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		salesColumns,
		whereClause,
		filters.SortBy.Column(),
		filters.SortOrder,
		qb.NextParamIndex(),
		qb.NextParamIndex()+1,
	)

	dataParams := append(append([]interface{}{}, params...), filters.Limit, offset)

	rows, err := r.sqlDB.Query(dataQuery, dataParams...)
	if err != nil {
		return nil, 0, newDataAccessError("list", err)
	}
	defer rows.Close()

	transactions := []models.SalesTransaction{}
	for rows.Next() {
		t, err := scanSalesRow(rows)
		if err != nil {
			return nil, 0, newDataAccessError("list", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, newDataAccessError("list", err)
	}

	return transactions, total, nil
}

// Statistics aggregates totals over exactly the rows matching the filters.
// All sums COALESCE to zero so an empty match set yields {0, 0, 0}.
func (r *salesRepository) Statistics(filters models.SalesFilters) (models.SalesStatistics, error) {
	qb := buildFilterQuery(filters)

	query := fmt.Sprintf(
		`SELECT
			COALESCE(SUM(quantity), 0) AS total_units,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(total_amount - final_amount), 0) AS total_discount
		FROM sales_transactions %s`,
		qb.BuildWhereClause(),
	)

	stats := models.ZeroSalesStatistics()
	err := r.sqlDB.QueryRow(query, qb.Params()...).
		Scan(&stats.TotalUnits, &stats.TotalAmount, &stats.TotalDiscount)
	if err != nil {
		return models.ZeroSalesStatistics(), newDataAccessError("statistics", err)
	}

	return stats, nil
}

// FilterOptions enumerates the distinct non-null values of every categorical
// dimension across the whole table, sorted ascending. Tags are flattened
// from the per-row arrays before deduplication.
func (r *salesRepository) FilterOptions() (models.FilterOptions, error) {
	var options models.FilterOptions
	var err error

	if options.Regions, err = r.distinctValues(
		"SELECT DISTINCT customer_region FROM sales_transactions WHERE customer_region IS NOT NULL ORDER BY customer_region",
	); err != nil {
		return models.FilterOptions{}, err
	}

	if options.Genders, err = r.distinctValues(
		"SELECT DISTINCT gender FROM sales_transactions WHERE gender IS NOT NULL ORDER BY gender",
	); err != nil {
		return models.FilterOptions{}, err
	}

	if options.Categories, err = r.distinctValues(
		"SELECT DISTINCT product_category FROM sales_transactions WHERE product_category IS NOT NULL ORDER BY product_category",
	); err != nil {
		return models.FilterOptions{}, err
	}

	if options.PaymentMethods, err = r.distinctValues(
		"SELECT DISTINCT payment_method FROM sales_transactions WHERE payment_method IS NOT NULL ORDER BY payment_method",
	); err != nil {
		return models.FilterOptions{}, err
	}

	if options.Tags, err = r.distinctValues(
		"SELECT DISTINCT UNNEST(tags) AS tag FROM sales_transactions WHERE tags IS NOT NULL ORDER BY tag",
	); err != nil {
		return models.FilterOptions{}, err
	}

	return options, nil
}

func (r *salesRepository) distinctValues(query string) ([]string, error) {
	rows, err := r.sqlDB.Query(query)
	if err != nil {
		return nil, newDataAccessError("filter-options", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, newDataAccessError("filter-options", err)
		}
		if value.Valid && value.String != "" {
			values = append(values, value.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, newDataAccessError("filter-options", err)
	}

	return values, nil
}

// CreateBatch inserts a batch of rows in a single database transaction
func (r *salesRepository) CreateBatch(rows []models.SalesTransaction) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create batch of sales transactions: %w", err)
		}
		return nil
	})
}

// Truncate empties the sales fact table and resets the identity sequence
func (r *salesRepository) Truncate() error {
	if err := r.db.Exec("TRUNCATE TABLE sales_transactions RESTART IDENTITY").Error; err != nil {
		return fmt.Errorf("failed to truncate sales_transactions: %w", err)
	}
	return nil
}

// scanSalesRow scans one projection row, mapping SQL NULLs onto Go zero
// values (or nil for age, where zero is a legitimate stored value).
func scanSalesRow(rows *sql.Rows) (models.SalesTransaction, error) {
	var (
		t models.SalesTransaction

		transactionID, customerID, customerName, phoneNumber, gender,
		customerRegion, customerType, productID, productName, brand,
		productCategory, paymentMethod, orderStatus, deliveryType,
		storeID, storeLocation, salespersonID, employeeName sql.NullString

		age, quantity sql.NullInt64
		date          sql.NullTime

		pricePerUnit, discountPercentage, totalAmount, finalAmount decimal.NullDecimal
	)

	err := rows.Scan(
		&t.ID,
		&transactionID,
		&date,
		&customerID,
		&customerName,
		&phoneNumber,
		&gender,
		&age,
		&customerRegion,
		&customerType,
		&productID,
		&productName,
		&brand,
		&productCategory,
		&t.Tags,
		&quantity,
		&pricePerUnit,
		&discountPercentage,
		&totalAmount,
		&finalAmount,
		&paymentMethod,
		&orderStatus,
		&deliveryType,
		&storeID,
		&storeLocation,
		&salespersonID,
		&employeeName,
	)
	if err != nil {
		return models.SalesTransaction{}, err
	}

	t.TransactionID = transactionID.String
	t.Date = date.Time
	t.CustomerID = customerID.String
	t.CustomerName = customerName.String
	t.PhoneNumber = phoneNumber.String
	t.Gender = gender.String
	if age.Valid {
		ageValue := int(age.Int64)
		t.Age = &ageValue
	}
	t.CustomerRegion = customerRegion.String
	t.CustomerType = customerType.String
	t.ProductID = productID.String
	t.ProductName = productName.String
	t.Brand = brand.String
	t.ProductCategory = productCategory.String
	t.Quantity = int(quantity.Int64)
	t.PricePerUnit = pricePerUnit.Decimal
	t.DiscountPercentage = discountPercentage.Decimal
	t.TotalAmount = totalAmount.Decimal
	t.FinalAmount = finalAmount.Decimal
	t.PaymentMethod = paymentMethod.String
	t.OrderStatus = orderStatus.String
	t.DeliveryType = deliveryType.String
	t.StoreID = storeID.String
	t.StoreLocation = storeLocation.String
	t.SalespersonID = salespersonID.String
	t.EmployeeName = employeeName.String

	return t, nil
}
