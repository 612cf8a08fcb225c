package importer

// column describes one CSV column: the human-readable header the exports
// carry, and the snake_case fallback accepted when a file was produced
// programmatically. Header matching is case-sensitive on both forms.
type column struct {
	header   string
	fallback string
}

var (
	colTransactionID      = column{"Transaction ID", "transaction_id"}
	colDate               = column{"Date", "date"}
	colCustomerID         = column{"Customer ID", "customer_id"}
	colCustomerName       = column{"Customer Name", "customer_name"}
	colPhoneNumber        = column{"Phone Number", "phone_number"}
	colGender             = column{"Gender", "gender"}
	colAge                = column{"Age", "age"}
	colCustomerRegion     = column{"Customer Region", "customer_region"}
	colCustomerType       = column{"Customer Type", "customer_type"}
	colProductID          = column{"Product ID", "product_id"}
	colProductName        = column{"Product Name", "product_name"}
	colBrand              = column{"Brand", "brand"}
	colProductCategory    = column{"Product Category", "product_category"}
	colTags               = column{"Tags", "tags"}
	colQuantity           = column{"Quantity", "quantity"}
	colPricePerUnit       = column{"Price per Unit", "price_per_unit"}
	colDiscountPercentage = column{"Discount Percentage", "discount_percentage"}
	colTotalAmount        = column{"Total Amount", "total_amount"}
	colFinalAmount        = column{"Final Amount", "final_amount"}
	colPaymentMethod      = column{"Payment Method", "payment_method"}
	colOrderStatus        = column{"Order Status", "order_status"}
	colDeliveryType       = column{"Delivery Type", "delivery_type"}
	colStoreID            = column{"Store ID", "store_id"}
	colStoreLocation      = column{"Store Location", "store_location"}
	colSalespersonID      = column{"Salesperson ID", "salesperson_id"}
	colEmployeeName       = column{"Employee Name", "employee_name"}
)

// knownColumns lists every column the loader understands; a header row that
// matches none of them is rejected as malformed.
var knownColumns = []column{
	colTransactionID, colDate, colCustomerID, colCustomerName, colPhoneNumber,
	colGender, colAge, colCustomerRegion, colCustomerType, colProductID,
	colProductName, colBrand, colProductCategory, colTags, colQuantity,
	colPricePerUnit, colDiscountPercentage, colTotalAmount, colFinalAmount,
	colPaymentMethod, colOrderStatus, colDeliveryType, colStoreID,
	colStoreLocation, colSalespersonID, colEmployeeName,
}

// colIndex maps header cell text to its position in the row
type colIndex map[string]int

// lookup resolves a column to its row position, preferring the
// human-readable header over the snake_case fallback.
func (c colIndex) lookup(col column) (int, bool) {
	if idx, ok := c[col.header]; ok {
		return idx, true
	}
	if idx, ok := c[col.fallback]; ok {
		return idx, true
	}
	return 0, false
}

// matchesAny reports whether at least one known column is present
func (c colIndex) matchesAny() bool {
	for _, col := range knownColumns {
		if _, ok := c.lookup(col); ok {
			return true
		}
	}
	return false
}
