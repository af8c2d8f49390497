// Package memory provides in-memory adapters used when no database is
// configured and as backing for tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
)

var (
	_ ports.CustomerRepository = (*Repository)(nil)
	_ ports.OrderRepository    = (*Repository)(nil)
	_ ports.GroupRepository    = (*Repository)(nil)
	_ ports.StoreRepository    = (*Repository)(nil)
)

// Repository holds customer, order, group, and store records in memory.
type Repository struct {
	mu        sync.RWMutex
	customers []domain.CustomerRecord
	orders    []domain.OrderRecord
	groups    map[int64]string
	stores    map[int64]string
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{
		groups: map[int64]string{},
		stores: map[int64]string{},
	}
}

// AddCustomer seeds a registered customer.
func (r *Repository) AddCustomer(customer domain.CustomerRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, customer)
}

// AddOrder seeds an order.
func (r *Repository) AddOrder(order domain.OrderRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
}

// SetGroup seeds a group code.
func (r *Repository) SetGroup(id int64, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[id] = code
}

// SetStore seeds a store's website name.
func (r *Repository) SetStore(id int64, websiteName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[id] = websiteName
}

func (r *Repository) ByEmail(_ context.Context, email string) (*domain.CustomerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.customers {
		if r.customers[i].Email == email {
			copy := r.customers[i]
			return &copy, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) LatestByEmail(_ context.Context, email string) (*domain.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.OrderRecord
	for i := range r.orders {
		if r.orders[i].CustomerEmail != email {
			continue
		}
		if latest == nil || r.orders[i].ID > latest.ID {
			latest = &r.orders[i]
		}
	}
	if latest == nil {
		return nil, ports.ErrNotFound
	}
	copy := *latest
	return &copy, nil
}

func (r *Repository) RecentByEmail(_ context.Context, email string, limit int) ([]*domain.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.OrderRecord
	for i := range r.orders {
		if r.orders[i].CustomerEmail == email {
			matched = append(matched, r.orders[i])
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	result := make([]*domain.OrderRecord, 0, len(matched))
	for i := range matched {
		copy := matched[i]
		result = append(result, &copy)
	}
	return result, nil
}

// SumInvoicedSubtotals matches case-insensitively, mirroring the LIKE
// comparison the SQL adapter issues.
func (r *Repository) SumInvoicedSubtotals(_ context.Context, emailPattern string) (domain.NullNumeric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum domain.NullNumeric
	for i := range r.orders {
		if !strings.EqualFold(r.orders[i].CustomerEmail, emailPattern) {
			continue
		}
		if invoiced := r.orders[i].SubtotalInvoiced; invoiced.Valid {
			sum.Float64 += invoiced.Float64
			sum.Valid = true
		}
	}
	return sum, nil
}

func (r *Repository) Code(_ context.Context, id int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	code, ok := r.groups[id]
	if !ok {
		return "", ports.ErrNotFound
	}
	return code, nil
}

func (r *Repository) WebsiteName(_ context.Context, storeID int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.stores[storeID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return name, nil
}
