package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderAddressRecord_Format(t *testing.T) {
	addr := OrderAddressRecord{
		Firstname: "Jane",
		Lastname:  "Doe",
		Company:   "Acme",
		Street:    "1 Main St",
		City:      "Springfield",
		Region:    "IL",
		Postcode:  "62701",
		CountryID: "US",
		Telephone: "555-0100",
	}
	assert.Equal(t, "Jane Doe\nAcme\n1 Main St\nSpringfield, IL, 62701\nUS\nT: 555-0100", addr.Format())
}

func TestOrderAddressRecord_FormatSkipsEmptyParts(t *testing.T) {
	addr := OrderAddressRecord{Firstname: "Jane", City: "Springfield", Postcode: "62701"}
	assert.Equal(t, "Jane\nSpringfield, 62701", addr.Format())
}

func TestOrderItemRecord_Visible(t *testing.T) {
	parent := int64(1)
	assert.True(t, (&OrderItemRecord{}).Visible())
	assert.False(t, (&OrderItemRecord{ParentItemID: &parent}).Visible())
}

func TestOrderRecord_TotalDue(t *testing.T) {
	order := OrderRecord{GrandTotal: 100, TotalPaid: 30}
	assert.Equal(t, 70.0, order.TotalDue())
}
