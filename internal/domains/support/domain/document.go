package domain

// CustomerSummary is the identity portion of the consolidated response.
// Money fields are pre-formatted display strings.
type CustomerSummary struct {
	Email         string `json:"email"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	CreatedAt     string `json:"created_at"`
	Group         string `json:"group"`
	LifetimeSales string `json:"lifetime_sales"`
}

// CustomerOrders is the response document for the customer-order endpoint.
type CustomerOrders struct {
	CustomerSummary
	Orders []OrderSummary `json:"orders"`
}

// OrderSummary is one recent order shaped for display.
type OrderSummary struct {
	IncrementID     string     `json:"increment_id"`
	CreatedAt       string     `json:"created_at"`
	Status          string     `json:"status"`
	StoreName       string     `json:"store_name"`
	BillingAddress  string     `json:"billing_address"`
	ShippingAddress string     `json:"shipping_address"`
	Subtotal        string     `json:"subtotal"`
	ShippingAmount  string     `json:"shipping_amount"`
	DiscountAmount  string     `json:"discount_amount"`
	TaxAmount       string     `json:"tax_amount"`
	GrandTotal      string     `json:"grand_total"`
	TotalPaid       string     `json:"total_paid"`
	TotalRefunded   string     `json:"total_refunded"`
	TotalDue        string     `json:"total_due"`
	PaymentMethod   string     `json:"payment_method"`
	ShippingMethod  string     `json:"shipping_method"`
	Items           []LineItem `json:"items"`
}

// LineItem is a visible order line. Subtotal and total are recomputed from
// quantity, price, and discount rather than copied from stored columns.
type LineItem struct {
	Name          string  `json:"name"`
	Sku           string  `json:"sku"`
	Status        string  `json:"status"`
	OriginalPrice string  `json:"original_price"`
	Price         string  `json:"price"`
	QtyOrdered    float64 `json:"qty_ordered"`
	Subtotal      string  `json:"subtotal"`
	TaxAmount     string  `json:"tax_amount"`
	TaxPercent    float64 `json:"tax_percent"`
	Discount      string  `json:"discount"`
	Total         string  `json:"total"`
}
