package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

func TestProcessOrders_Scenario(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, ClientID: 5, OrderDate: "2024-03-15T00:00:00", Status: domain.StatusComplete, Origin: domain.OriginOnline},
	}
	items := []domain.OrderItem{
		{OrderID: 1, ProductID: 9, Quantity: 2, Price: 10.0, Tax: 0.05},
	}

	summaries := ProcessOrders(orders, items, domain.StatusComplete, domain.OriginOnline)

	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].OrderID)
	assert.InDelta(t, 20.0, summaries[0].TotalAmount, 1e-9)
	assert.InDelta(t, 1.0, summaries[0].TotalTaxes, 1e-9)
}

func TestProcessOrders_FilterIsExact(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusComplete, Origin: domain.OriginOnline},
		{ID: 2, Status: domain.StatusComplete, Origin: domain.OriginParaphysical},
		{ID: 3, Status: domain.StatusPending, Origin: domain.OriginOnline},
		{ID: 4, Status: domain.StatusCancelled, Origin: domain.OriginParaphysical},
		{ID: 5, Status: domain.StatusComplete, Origin: domain.OriginOnline},
	}

	summaries := ProcessOrders(orders, nil, domain.StatusComplete, domain.OriginOnline)

	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].OrderID)
	assert.Equal(t, 5, summaries[1].OrderID)
}

func TestProcessOrders_OrderWithoutItems(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusComplete, Origin: domain.OriginOnline},
	}
	items := []domain.OrderItem{
		{OrderID: 2, Quantity: 4, Price: 25.0, Tax: 0.05}, // belongs to a filtered-out order
	}

	summaries := ProcessOrders(orders, items, domain.StatusComplete, domain.OriginOnline)

	require.Len(t, summaries, 1)
	assert.Equal(t, domain.OrderSummary{OrderID: 1, TotalAmount: 0, TotalTaxes: 0}, summaries[0])
}

func TestProcessOrders_NoMatches(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Status: domain.StatusPending, Origin: domain.OriginOnline},
	}

	summaries := ProcessOrders(orders, nil, domain.StatusComplete, domain.OriginOnline)
	assert.Empty(t, summaries)
}
