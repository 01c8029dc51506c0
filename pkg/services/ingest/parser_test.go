package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

func TestParseStatus(t *testing.T) {
	valid := map[string]domain.Status{
		"Pending":   domain.StatusPending,
		"Complete":  domain.StatusComplete,
		"Cancelled": domain.StatusCancelled,
	}
	for token, want := range valid {
		got, err := ParseStatus(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got)
	}

	for _, token := range []string{"", "complete", "COMPLETE", "Shipped", "Complete "} {
		_, err := ParseStatus(token)
		assert.ErrorIs(t, err, ErrInvalidEnum, "token %q", token)
		assert.ErrorContains(t, err, token)
	}
}

func TestParseOrigin(t *testing.T) {
	got, err := ParseOrigin("P")
	require.NoError(t, err)
	assert.Equal(t, domain.OriginParaphysical, got)

	got, err = ParseOrigin("O")
	require.NoError(t, err)
	assert.Equal(t, domain.OriginOnline, got)

	for _, token := range []string{"", "p", "o", "Online", "X"} {
		_, err := ParseOrigin(token)
		assert.ErrorIs(t, err, ErrInvalidEnum, "token %q", token)
	}
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder([]string{"1", "42", "2024-03-15T00:00:00", "Complete", "O"})
	require.NoError(t, err)
	assert.Equal(t, domain.Order{
		ID:        1,
		ClientID:  42,
		OrderDate: "2024-03-15T00:00:00",
		Status:    domain.StatusComplete,
		Origin:    domain.OriginOnline,
	}, order)
}

func TestParseOrder_Failures(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   error
	}{
		{"wrong arity", []string{"1", "2"}, ErrMalformedRecord},
		{"too many fields", []string{"1", "2", "2024-01-01", "Complete", "O", "extra"}, ErrMalformedRecord},
		{"non-numeric id", []string{"one", "2", "2024-01-01", "Complete", "O"}, ErrMalformedRecord},
		{"non-numeric client id", []string{"1", "two", "2024-01-01", "Complete", "O"}, ErrMalformedRecord},
		{"bad status", []string{"1", "2", "2024-01-01", "Done", "O"}, ErrInvalidEnum},
		{"bad origin", []string{"1", "2", "2024-01-01", "Complete", "Q"}, ErrInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrder(tt.fields)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseOrderItem(t *testing.T) {
	item, err := ParseOrderItem([]string{"1", "7", "2", "10.0", "0.05"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderItem{
		OrderID:   1,
		ProductID: 7,
		Quantity:  2,
		Price:     10.0,
		Tax:       0.05,
	}, item)
}

func TestParseOrderItem_Failures(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"wrong arity", []string{"1", "2"}},
		{"non-numeric order id", []string{"x", "7", "2", "10.0", "0.05"}},
		{"non-numeric quantity", []string{"1", "7", "2.5", "10.0", "0.05"}},
		{"non-numeric price", []string{"1", "7", "2", "ten", "0.05"}},
		{"non-numeric tax", []string{"1", "7", "2", "10.0", "five"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOrderItem(tt.fields)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}
