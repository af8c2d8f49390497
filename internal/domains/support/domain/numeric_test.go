package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullNumeric_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  NullNumeric
	}{
		{"float", 10.5, NullNumeric{Float64: 10.5, Valid: true}},
		{"int", int64(3), NullNumeric{Float64: 3, Valid: true}},
		{"numeric string", "2", NullNumeric{Float64: 2, Valid: true}},
		{"numeric bytes", []byte("8.25"), NullNumeric{Float64: 8.25, Valid: true}},
		{"null", nil, NullNumeric{}},
		{"non-numeric string", "abc", NullNumeric{}},
		{"empty string", "", NullNumeric{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n NullNumeric
			require.NoError(t, n.Scan(tc.value))
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestNullNumeric_ScanRejectsUnknownTypes(t *testing.T) {
	var n NullNumeric
	require.Error(t, n.Scan(struct{}{}))
}

func TestNullNumeric_Value(t *testing.T) {
	v, err := Numeric(1.5).Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = NullNumeric{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
