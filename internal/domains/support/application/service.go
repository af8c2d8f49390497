package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/format"
)

// DefaultOrderLimit caps how many recent orders the response carries.
const DefaultOrderLimit = 5

// placeholder stands in for any display field with no resolvable value.
const placeholder = "-"

// Service assembles the consolidated customer and order view. All reads are
// best-effort: a lookup miss degrades to default fields, never to an error.
type Service struct {
	customers  ports.CustomerRepository
	orders     ports.OrderRepository
	groups     ports.GroupRepository
	stores     ports.StoreRepository
	money      *format.MoneyFormatter
	dates      *format.DateFormatter
	orderLimit int
	logger     *slog.Logger
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithOrderLimit overrides the recent-order cap.
func WithOrderLimit(limit int) ServiceOption {
	return func(s *Service) {
		if limit > 0 {
			s.orderLimit = limit
		}
	}
}

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires the aggregator over the external repositories and the
// store's display formatters.
func NewService(
	customers ports.CustomerRepository,
	orders ports.OrderRepository,
	groups ports.GroupRepository,
	stores ports.StoreRepository,
	money *format.MoneyFormatter,
	dates *format.DateFormatter,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		customers:  customers,
		orders:     orders,
		groups:     groups,
		stores:     stores,
		money:      money,
		dates:      dates,
		orderLimit: DefaultOrderLimit,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CustomerOrders builds the response document for email. Identity comes from
// the registered customer account or, for guest checkouts, from the most
// recent order's snapshot fields.
func (s *Service) CustomerOrders(ctx context.Context, email string) (*domain.CustomerOrders, error) {
	doc := &domain.CustomerOrders{Orders: []domain.OrderSummary{}}

	groupID, err := s.fillIdentity(ctx, &doc.CustomerSummary, email)
	if err != nil {
		return nil, err
	}

	doc.Group = s.groupLabel(ctx, groupID)

	lifetime, err := s.orders.SumInvoicedSubtotals(ctx, email)
	if err != nil {
		return nil, err
	}
	doc.LifetimeSales = s.money.Format(lifetime.Float64)

	recent, err := s.orders.RecentByEmail(ctx, email, s.orderLimit)
	if err != nil {
		return nil, err
	}
	for _, order := range recent {
		doc.Orders = append(doc.Orders, s.orderSummary(ctx, order))
	}
	return doc, nil
}

// fillIdentity populates the identity fields and returns the group id to
// resolve, if any. The registered account and the guest-order snapshot are
// mutually exclusive sources.
func (s *Service) fillIdentity(ctx context.Context, summary *domain.CustomerSummary, email string) (*int64, error) {
	customer, err := s.customers.ByEmail(ctx, email)
	if err == nil {
		summary.Email = customer.Email
		summary.Firstname = customer.Firstname
		summary.Lastname = customer.Lastname
		summary.CreatedAt = s.dates.Format(customer.CreatedAt)
		return customer.GroupID, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}

	order, err := s.orders.LatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	summary.Email = order.CustomerEmail
	summary.Firstname = order.CustomerFirstname
	summary.Lastname = order.CustomerLastname
	return order.CustomerGroupID, nil
}

func (s *Service) groupLabel(ctx context.Context, groupID *int64) string {
	if groupID == nil {
		return placeholder
	}
	code, err := s.groups.Code(ctx, *groupID)
	if err != nil || code == "" {
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			s.logger.WarnContext(ctx, "group lookup failed", slog.Int64("group_id", *groupID), slog.String("error", err.Error()))
		}
		return placeholder
	}
	return code
}

func (s *Service) orderSummary(ctx context.Context, order *domain.OrderRecord) domain.OrderSummary {
	summary := domain.OrderSummary{
		IncrementID:     order.IncrementID,
		CreatedAt:       s.dates.Format(order.CreatedAt),
		Status:          order.Status,
		StoreName:       s.storeName(ctx, order.StoreID),
		BillingAddress:  formatAddress(order.Billing),
		ShippingAddress: formatAddress(order.Shipping),
		Subtotal:        s.money.Format(order.Subtotal),
		ShippingAmount:  s.money.Format(order.ShippingAmount),
		DiscountAmount:  s.money.Format(order.DiscountAmount),
		TaxAmount:       s.money.Format(order.TaxAmount),
		GrandTotal:      s.money.Format(order.GrandTotal),
		TotalPaid:       s.money.Format(order.TotalPaid),
		TotalRefunded:   s.money.Format(order.TotalRefunded),
		TotalDue:        s.money.Format(order.TotalDue()),
		PaymentMethod:   orDash(order.PaymentMethodTitle),
		ShippingMethod:  orDash(order.ShippingDescription),
		Items:           []domain.LineItem{},
	}
	for i := range order.Items {
		item := &order.Items[i]
		if !item.Visible() {
			continue
		}
		summary.Items = append(summary.Items, s.lineItem(item))
	}
	return summary
}

// lineItem recomputes subtotal and total from the raw columns instead of
// trusting the stored row aggregates.
func (s *Service) lineItem(item *domain.OrderItemRecord) domain.LineItem {
	qty := item.QtyOrdered.Float64
	subtotal := qty * item.Price
	total := item.RowTotal - item.DiscountAmount
	return domain.LineItem{
		Name:          item.Name,
		Sku:           item.Sku,
		Status:        item.Status,
		OriginalPrice: s.money.Format(item.OriginalPrice),
		Price:         s.money.Format(item.Price),
		QtyOrdered:    qty,
		Subtotal:      s.money.Format(subtotal),
		TaxAmount:     s.money.Format(item.TaxAmount),
		TaxPercent:    item.TaxPercent.Float64,
		Discount:      s.money.Format(item.DiscountAmount),
		Total:         s.money.Format(total),
	}
}

func (s *Service) storeName(ctx context.Context, storeID int64) string {
	name, err := s.stores.WebsiteName(ctx, storeID)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			s.logger.WarnContext(ctx, "store lookup failed", slog.Int64("store_id", storeID), slog.String("error", err.Error()))
		}
		return ""
	}
	return name
}

func formatAddress(addr *domain.OrderAddressRecord) string {
	if addr == nil {
		return placeholder
	}
	return addr.Format()
}

func orDash(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

var _ ports.Service = (*Service)(nil)
