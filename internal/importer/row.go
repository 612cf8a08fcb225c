package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// mapRow converts one CSV record into a SalesTransaction. An empty cell maps
// to the field's zero value (nil for age); a non-empty cell that fails to
// parse fails the whole row rather than silently becoming zero.
func mapRow(cols colIndex, record []string) (models.SalesTransaction, error) {
	tx := models.SalesTransaction{
		TransactionID:   cellValue(cols, record, colTransactionID),
		CustomerID:      cellValue(cols, record, colCustomerID),
		CustomerName:    cellValue(cols, record, colCustomerName),
		PhoneNumber:     cellValue(cols, record, colPhoneNumber),
		Gender:          cellValue(cols, record, colGender),
		CustomerRegion:  cellValue(cols, record, colCustomerRegion),
		CustomerType:    cellValue(cols, record, colCustomerType),
		ProductID:       cellValue(cols, record, colProductID),
		ProductName:     cellValue(cols, record, colProductName),
		Brand:           cellValue(cols, record, colBrand),
		ProductCategory: cellValue(cols, record, colProductCategory),
		PaymentMethod:   cellValue(cols, record, colPaymentMethod),
		OrderStatus:     cellValue(cols, record, colOrderStatus),
		DeliveryType:    cellValue(cols, record, colDeliveryType),
		StoreID:         cellValue(cols, record, colStoreID),
		StoreLocation:   cellValue(cols, record, colStoreLocation),
		SalespersonID:   cellValue(cols, record, colSalespersonID),
		EmployeeName:    cellValue(cols, record, colEmployeeName),
		Tags:            parseTags(cellValue(cols, record, colTags)),
	}

	if raw := cellValue(cols, record, colDate); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return models.SalesTransaction{}, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		tx.Date = date
	}

	if raw := cellValue(cols, record, colAge); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return models.SalesTransaction{}, fmt.Errorf("invalid age %q: %w", raw, err)
		}
		tx.Age = &age
	}

	if raw := cellValue(cols, record, colQuantity); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return models.SalesTransaction{}, fmt.Errorf("invalid quantity %q: %w", raw, err)
		}
		tx.Quantity = quantity
	}

	var err error
	if tx.PricePerUnit, err = parseDecimal(cols, record, colPricePerUnit); err != nil {
		return models.SalesTransaction{}, err
	}
	if tx.DiscountPercentage, err = parseDecimal(cols, record, colDiscountPercentage); err != nil {
		return models.SalesTransaction{}, err
	}
	if tx.TotalAmount, err = parseDecimal(cols, record, colTotalAmount); err != nil {
		return models.SalesTransaction{}, err
	}
	if tx.FinalAmount, err = parseDecimal(cols, record, colFinalAmount); err != nil {
		return models.SalesTransaction{}, err
	}

	return tx, nil
}

func cellValue(cols colIndex, record []string, col column) string {
	idx, ok := cols.lookup(col)
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseDecimal(cols colIndex, record []string, col column) (decimal.Decimal, error) {
	raw := cellValue(cols, record, col)
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", col.fallback, raw, err)
	}
	return value, nil
}

// parseTags splits a comma-separated tag cell into a set, dropping blanks
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}
