package ports

import (
	"context"
	"errors"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
)

// ErrNotFound signals a lookup miss in any repository.
var ErrNotFound = errors.New("not found")

// CustomerRepository reads registered customer accounts.
type CustomerRepository interface {
	// ByEmail loads the customer with exactly this email, or ErrNotFound.
	ByEmail(ctx context.Context, email string) (*domain.CustomerRecord, error)
}

// OrderRepository reads sales orders. All methods are read-only.
type OrderRepository interface {
	// LatestByEmail returns the most recent order (highest id) whose
	// customer_email equals email exactly, or ErrNotFound. Used for the
	// guest-checkout identity fallback; only the snapshot fields need to
	// be populated.
	LatestByEmail(ctx context.Context, email string) (*domain.OrderRecord, error)

	// RecentByEmail returns up to limit orders for the exact email, newest
	// first, with addresses, payment, and items attached.
	RecentByEmail(ctx context.Context, email string, limit int) ([]*domain.OrderRecord, error)

	// SumInvoicedSubtotals sums subtotal_invoiced across all orders whose
	// customer_email matches the pattern case-insensitively. The match is
	// deliberately looser than the exact match used for order listing.
	SumInvoicedSubtotals(ctx context.Context, emailPattern string) (domain.NullNumeric, error)
}

// GroupRepository resolves customer group codes.
type GroupRepository interface {
	// Code returns the group label for id, or ErrNotFound.
	Code(ctx context.Context, id int64) (string, error)
}

// StoreRepository resolves store display names.
type StoreRepository interface {
	// WebsiteName returns the name of the website owning the store view.
	WebsiteName(ctx context.Context, storeID int64) (string, error)
}
