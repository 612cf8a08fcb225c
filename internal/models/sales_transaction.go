package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SalesTransaction represents one row of the denormalized sales fact table.
// Customer, product and store attributes are flattened onto the record;
// there are no foreign-key relationships.
type SalesTransaction struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID string    `gorm:"type:varchar(50);column:transaction_id" json:"transaction_id"`
	Date          time.Time `gorm:"type:date;index" json:"date"`

	// Customer fields
	CustomerID     string `gorm:"type:varchar(50)" json:"customer_id"`
	CustomerName   string `gorm:"type:varchar(255);index" json:"customer_name"`
	PhoneNumber    string `gorm:"type:varchar(20);index" json:"phone_number"`
	Gender         string `gorm:"type:varchar(20);index" json:"gender"`
	Age            *int   `json:"age"`
	CustomerRegion string `gorm:"type:varchar(100);index" json:"customer_region"`
	CustomerType   string `gorm:"type:varchar(50)" json:"customer_type"`

	// Product fields
	ProductID       string         `gorm:"type:varchar(50)" json:"product_id"`
	ProductName     string         `gorm:"type:varchar(255)" json:"product_name"`
	Brand           string         `gorm:"type:varchar(100)" json:"brand"`
	ProductCategory string         `gorm:"type:varchar(100);index" json:"product_category"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`

	// Commercial fields
	Quantity           int             `gorm:"not null;default:0" json:"quantity"`
	PricePerUnit       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	FinalAmount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"final_amount"`

	// Operational fields
	PaymentMethod string `gorm:"type:varchar(50);index" json:"payment_method"`
	OrderStatus   string `gorm:"type:varchar(50)" json:"order_status"`
	DeliveryType  string `gorm:"type:varchar(50)" json:"delivery_type"`
	StoreID       string `gorm:"type:varchar(50)" json:"store_id"`
	StoreLocation string `gorm:"type:varchar(255)" json:"store_location"`
	SalespersonID string `gorm:"type:varchar(50)" json:"salesperson_id"`
	EmployeeName  string `gorm:"type:varchar(255)" json:"employee_name"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName overrides the GORM default pluralization
func (SalesTransaction) TableName() string {
	return "sales_transactions"
}

// DiscountGiven returns the currency amount discounted on this record
func (t *SalesTransaction) DiscountGiven() decimal.Decimal {
	return t.TotalAmount.Sub(t.FinalAmount)
}
