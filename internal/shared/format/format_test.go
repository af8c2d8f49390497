package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFormatter_Format(t *testing.T) {
	f, err := NewMoneyFormatter("en-US", "USD")
	require.NoError(t, err)

	assert.Equal(t, "$1,234.50", f.Format(1234.5))
	assert.Equal(t, "$0.00", f.Format(0))
	assert.Equal(t, "$10.00", f.Format(10))
	// Negative amounts get a minus sign, never brackets.
	assert.Equal(t, "-$5.25", f.Format(-5.25))
}

func TestMoneyFormatter_FixedScaleRegardlessOfCurrency(t *testing.T) {
	f, err := NewMoneyFormatter("en-US", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$19.00", f.Format(19))
}

func TestNewMoneyFormatter_RejectsBadInputs(t *testing.T) {
	_, err := NewMoneyFormatter("not a locale", "USD")
	require.Error(t, err)
	_, err = NewMoneyFormatter("en-US", "nope")
	require.Error(t, err)
}

func TestDateFormatter_Format(t *testing.T) {
	f, err := NewDateFormatter("", "UTC")
	require.NoError(t, err)

	ts := time.Date(2024, 3, 15, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "Mar 15, 2024 2:05:09 PM", f.Format(ts))
	assert.Empty(t, f.Format(time.Time{}))
}

func TestDateFormatter_Timezone(t *testing.T) {
	f, err := NewDateFormatter("", "America/Chicago")
	require.NoError(t, err)

	// UTC winter time, Chicago is UTC-6.
	ts := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 10, 2024 12:00:00 PM", f.Format(ts))
}

func TestNewDateFormatter_RejectsBadTimezone(t *testing.T) {
	_, err := NewDateFormatter("", "Mars/Olympus")
	require.Error(t, err)
}
