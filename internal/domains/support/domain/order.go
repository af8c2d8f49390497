package domain

import (
	"strings"
	"time"
)

// OrderRecord is a sales order as read from the external order store,
// including the denormalized customer snapshot captured at checkout.
type OrderRecord struct {
	ID          int64
	IncrementID string
	Status      string
	StoreID     int64
	CreatedAt   time.Time

	CustomerEmail     string
	CustomerFirstname string
	CustomerLastname  string
	CustomerGroupID   *int64

	Subtotal         float64
	ShippingAmount   float64
	DiscountAmount   float64
	TaxAmount        float64
	GrandTotal       float64
	TotalPaid        float64
	TotalRefunded    float64
	SubtotalInvoiced NullNumeric

	PaymentMethodTitle  string
	ShippingDescription string

	Billing  *OrderAddressRecord
	Shipping *OrderAddressRecord
	Items    []OrderItemRecord
}

// TotalDue is the outstanding balance on the order.
func (o *OrderRecord) TotalDue() float64 {
	return o.GrandTotal - o.TotalPaid
}

// OrderAddressRecord is a billing or shipping address attached to an order.
type OrderAddressRecord struct {
	Firstname string
	Lastname  string
	Company   string
	Street    string
	City      string
	Region    string
	Postcode  string
	CountryID string
	Telephone string
}

// Format renders the address as a single multi-line string, skipping empty
// parts, in the layout support agents see in the store backend.
func (a *OrderAddressRecord) Format() string {
	lines := make([]string, 0, 5)
	if name := strings.TrimSpace(a.Firstname + " " + a.Lastname); name != "" {
		lines = append(lines, name)
	}
	if a.Company != "" {
		lines = append(lines, a.Company)
	}
	if a.Street != "" {
		lines = append(lines, a.Street)
	}
	locality := joinNonEmpty(", ", a.City, a.Region, a.Postcode)
	if locality != "" {
		lines = append(lines, locality)
	}
	if a.CountryID != "" {
		lines = append(lines, a.CountryID)
	}
	if a.Telephone != "" {
		lines = append(lines, "T: "+a.Telephone)
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// OrderItemRecord is a single purchased line on an order. QtyOrdered and
// TaxPercent tolerate string-typed columns in the external store.
type OrderItemRecord struct {
	ID             int64
	OrderID        int64
	ParentItemID   *int64
	Name           string
	Sku            string
	Status         string
	OriginalPrice  float64
	Price          float64
	QtyOrdered     NullNumeric
	TaxAmount      float64
	TaxPercent     NullNumeric
	DiscountAmount float64
	RowTotal       float64
}

// Visible reports whether the item shows up on the order for a customer.
// Children of bundle/configurable parents are hidden.
func (i *OrderItemRecord) Visible() bool {
	return i.ParentItemID == nil
}
