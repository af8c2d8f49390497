// Package postgres adapts the support repositories to the external store's
// PostgreSQL schema via GORM. Every query is a plain read.
package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
)

var (
	_ ports.CustomerRepository = (*Repository)(nil)
	_ ports.OrderRepository    = (*Repository)(nil)
	_ ports.GroupRepository    = (*Repository)(nil)
	_ ports.StoreRepository    = (*Repository)(nil)
)

// Repository reads customer, order, group, and store data. Caller manages
// the DB lifecycle.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) LatestByEmail(ctx context.Context, email string) (*domain.OrderRecord, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("entity_id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) RecentByEmail(ctx context.Context, email string, limit int) ([]*domain.OrderRecord, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).
		Where("customer_email = ?", email).
		Order("entity_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.OrderRecord, 0, len(records))
	for i := range records {
		order, err := r.expand(ctx, records[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// expand attaches addresses, payment, and line items to an order row.
func (r *Repository) expand(ctx context.Context, record orderRecord) (*domain.OrderRecord, error) {
	order := record.toDomain()

	var addresses []orderAddressRecord
	if err := r.db.WithContext(ctx).Find(&addresses, "parent_id = ?", record.ID).Error; err != nil {
		return nil, err
	}
	for i := range addresses {
		switch addresses[i].AddressType {
		case "billing":
			order.Billing = addresses[i].toDomain()
		case "shipping":
			order.Shipping = addresses[i].toDomain()
		}
	}

	var payment orderPaymentRecord
	err := r.db.WithContext(ctx).First(&payment, "parent_id = ?", record.ID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		order.PaymentMethodTitle = payment.MethodTitle
		if order.PaymentMethodTitle == "" {
			order.PaymentMethodTitle = payment.Method
		}
	}

	var items []orderItemRecord
	if err := r.db.WithContext(ctx).Order("item_id").Find(&items, "order_id = ?", record.ID).Error; err != nil {
		return nil, err
	}
	order.Items = make([]domain.OrderItemRecord, 0, len(items))
	for i := range items {
		order.Items = append(order.Items, items[i].toDomain())
	}
	return order, nil
}

func (r *Repository) SumInvoicedSubtotals(ctx context.Context, emailPattern string) (domain.NullNumeric, error) {
	if err := r.ensureDB(); err != nil {
		return domain.NullNumeric{}, err
	}
	var sum domain.NullNumeric
	row := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Select("SUM(subtotal_invoiced)").
		Where("LOWER(customer_email) LIKE LOWER(?)", emailPattern).
		Row()
	if err := row.Scan(&sum); err != nil {
		return domain.NullNumeric{}, err
	}
	return sum, nil
}

func (r *Repository) Code(ctx context.Context, id int64) (string, error) {
	if err := r.ensureDB(); err != nil {
		return "", err
	}
	var record groupRecord
	if err := r.db.WithContext(ctx).First(&record, "customer_group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return record.Code, nil
}

func (r *Repository) WebsiteName(ctx context.Context, storeID int64) (string, error) {
	if err := r.ensureDB(); err != nil {
		return "", err
	}
	var store storeRecord
	if err := r.db.WithContext(ctx).First(&store, "store_id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	var website websiteRecord
	if err := r.db.WithContext(ctx).First(&website, "website_id = ?", store.WebsiteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return website.Name, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres support repository not configured")
	}
	return nil
}
