package pipeline

import (
	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/aggregate"
)

// ProcessOrders keeps the orders whose status and origin both match the
// requested filter exactly, then summarizes each against the item set.
// Items are grouped once; orders without items produce zero-total
// summaries.
func ProcessOrders(
	orders []domain.Order,
	items []domain.OrderItem,
	status domain.Status,
	origin domain.Origin,
) []domain.OrderSummary {
	grouped := aggregate.GroupByOrder(items)

	var summaries []domain.OrderSummary
	for _, order := range orders {
		if order.Status != status || order.Origin != origin {
			continue
		}
		summaries = append(summaries, aggregate.SummarizeOrder(order, grouped))
	}
	return summaries
}
