package domain

import "time"

// CustomerRecord is a registered customer account as read from the external
// customer store.
type CustomerRecord struct {
	ID        int64
	Email     string
	Firstname string
	Lastname  string
	CreatedAt time.Time
	GroupID   *int64
}

// GroupRecord maps a customer group id to its human-readable code.
type GroupRecord struct {
	ID   int64
	Code string
}

// StoreRecord identifies the store view an order was placed against and the
// website it belongs to.
type StoreRecord struct {
	ID          int64
	Name        string
	WebsiteName string
}
