package postgres

import (
	"time"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
)

// Record types map the external store's tables. All of them are read-only
// from this service's point of view; no migrations are owned here.

type customerRecord struct {
	ID        int64     `gorm:"primaryKey;column:entity_id"`
	Email     string    `gorm:"column:email"`
	Firstname string    `gorm:"column:firstname"`
	Lastname  string    `gorm:"column:lastname"`
	CreatedAt time.Time `gorm:"column:created_at"`
	GroupID   *int64    `gorm:"column:group_id"`
}

func (customerRecord) TableName() string { return "customer_entity" }

type orderRecord struct {
	ID                  int64              `gorm:"primaryKey;column:entity_id"`
	IncrementID         string             `gorm:"column:increment_id"`
	Status              string             `gorm:"column:status"`
	StoreID             int64              `gorm:"column:store_id"`
	CreatedAt           time.Time          `gorm:"column:created_at"`
	CustomerEmail       string             `gorm:"column:customer_email;index"`
	CustomerFirstname   string             `gorm:"column:customer_firstname"`
	CustomerLastname    string             `gorm:"column:customer_lastname"`
	CustomerGroupID     *int64             `gorm:"column:customer_group_id"`
	Subtotal            float64            `gorm:"column:subtotal"`
	ShippingAmount      float64            `gorm:"column:shipping_amount"`
	DiscountAmount      float64            `gorm:"column:discount_amount"`
	TaxAmount           float64            `gorm:"column:tax_amount"`
	GrandTotal          float64            `gorm:"column:grand_total"`
	TotalPaid           float64            `gorm:"column:total_paid"`
	TotalRefunded       float64            `gorm:"column:total_refunded"`
	SubtotalInvoiced    domain.NullNumeric `gorm:"column:subtotal_invoiced;type:numeric"`
	ShippingDescription string             `gorm:"column:shipping_description"`
}

func (orderRecord) TableName() string { return "sales_flat_order" }

type orderAddressRecord struct {
	ID          int64  `gorm:"primaryKey;column:entity_id"`
	ParentID    int64  `gorm:"column:parent_id;index"`
	AddressType string `gorm:"column:address_type"`
	Firstname   string `gorm:"column:firstname"`
	Lastname    string `gorm:"column:lastname"`
	Company     string `gorm:"column:company"`
	Street      string `gorm:"column:street"`
	City        string `gorm:"column:city"`
	Region      string `gorm:"column:region"`
	Postcode    string `gorm:"column:postcode"`
	CountryID   string `gorm:"column:country_id"`
	Telephone   string `gorm:"column:telephone"`
}

func (orderAddressRecord) TableName() string { return "sales_flat_order_address" }

type orderPaymentRecord struct {
	ID          int64  `gorm:"primaryKey;column:entity_id"`
	ParentID    int64  `gorm:"column:parent_id;index"`
	Method      string `gorm:"column:method"`
	MethodTitle string `gorm:"column:method_title"`
}

func (orderPaymentRecord) TableName() string { return "sales_flat_order_payment" }

type orderItemRecord struct {
	ID             int64              `gorm:"primaryKey;column:item_id"`
	OrderID        int64              `gorm:"column:order_id;index"`
	ParentItemID   *int64             `gorm:"column:parent_item_id"`
	Name           string             `gorm:"column:name"`
	Sku            string             `gorm:"column:sku"`
	Status         string             `gorm:"column:status"`
	OriginalPrice  float64            `gorm:"column:original_price"`
	Price          float64            `gorm:"column:price"`
	QtyOrdered     domain.NullNumeric `gorm:"column:qty_ordered;type:numeric"`
	TaxAmount      float64            `gorm:"column:tax_amount"`
	TaxPercent     domain.NullNumeric `gorm:"column:tax_percent;type:numeric"`
	DiscountAmount float64            `gorm:"column:discount_amount"`
	RowTotal       float64            `gorm:"column:row_total"`
}

func (orderItemRecord) TableName() string { return "sales_flat_order_item" }

type groupRecord struct {
	ID   int64  `gorm:"primaryKey;column:customer_group_id"`
	Code string `gorm:"column:customer_group_code"`
}

func (groupRecord) TableName() string { return "customer_group" }

type storeRecord struct {
	ID        int64  `gorm:"primaryKey;column:store_id"`
	WebsiteID int64  `gorm:"column:website_id"`
	Name      string `gorm:"column:name"`
}

func (storeRecord) TableName() string { return "core_store" }

type websiteRecord struct {
	ID   int64  `gorm:"primaryKey;column:website_id"`
	Name string `gorm:"column:name"`
}

func (websiteRecord) TableName() string { return "core_website" }

func (r customerRecord) toDomain() *domain.CustomerRecord {
	return &domain.CustomerRecord{
		ID:        r.ID,
		Email:     r.Email,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		CreatedAt: r.CreatedAt,
		GroupID:   r.GroupID,
	}
}

func (r orderRecord) toDomain() *domain.OrderRecord {
	return &domain.OrderRecord{
		ID:                  r.ID,
		IncrementID:         r.IncrementID,
		Status:              r.Status,
		StoreID:             r.StoreID,
		CreatedAt:           r.CreatedAt,
		CustomerEmail:       r.CustomerEmail,
		CustomerFirstname:   r.CustomerFirstname,
		CustomerLastname:    r.CustomerLastname,
		CustomerGroupID:     r.CustomerGroupID,
		Subtotal:            r.Subtotal,
		ShippingAmount:      r.ShippingAmount,
		DiscountAmount:      r.DiscountAmount,
		TaxAmount:           r.TaxAmount,
		GrandTotal:          r.GrandTotal,
		TotalPaid:           r.TotalPaid,
		TotalRefunded:       r.TotalRefunded,
		SubtotalInvoiced:    r.SubtotalInvoiced,
		ShippingDescription: r.ShippingDescription,
	}
}

func (r orderAddressRecord) toDomain() *domain.OrderAddressRecord {
	return &domain.OrderAddressRecord{
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Company:   r.Company,
		Street:    r.Street,
		City:      r.City,
		Region:    r.Region,
		Postcode:  r.Postcode,
		CountryID: r.CountryID,
		Telephone: r.Telephone,
	}
}

func (r orderItemRecord) toDomain() domain.OrderItemRecord {
	return domain.OrderItemRecord{
		ID:             r.ID,
		OrderID:        r.OrderID,
		ParentItemID:   r.ParentItemID,
		Name:           r.Name,
		Sku:            r.Sku,
		Status:         r.Status,
		OriginalPrice:  r.OriginalPrice,
		Price:          r.Price,
		QtyOrdered:     r.QtyOrdered,
		TaxAmount:      r.TaxAmount,
		TaxPercent:     r.TaxPercent,
		DiscountAmount: r.DiscountAmount,
		RowTotal:       r.RowTotal,
	}
}
