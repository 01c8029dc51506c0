package aggregate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

var (
	// ErrInvalidDate marks an order date that cannot yield a year and month.
	ErrInvalidDate = errors.New("invalid date format")
	// ErrUnknownOrder marks a summary whose order is missing from the order
	// set. Summaries are always derived from the filtered orders, so hitting
	// this means an internal invariant was broken, not bad input.
	ErrUnknownOrder = errors.New("unknown order")
)

// Revenue is quantity times unit price for one line item.
func Revenue(item domain.OrderItem) float64 {
	return float64(item.Quantity) * item.Price
}

// TaxAmount applies the item's fractional tax rate to its revenue.
func TaxAmount(item domain.OrderItem) float64 {
	return Revenue(item) * item.Tax
}

// GroupByOrder buckets line items by their order id. Items of the same
// order accumulate in input order.
func GroupByOrder(items []domain.OrderItem) map[int][]domain.OrderItem {
	grouped := make(map[int][]domain.OrderItem)
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}
	return grouped
}

// SummarizeOrder totals revenue and tax over the items grouped under the
// order's id. An order with no items yields zero totals.
func SummarizeOrder(order domain.Order, grouped map[int][]domain.OrderItem) domain.OrderSummary {
	summary := domain.OrderSummary{OrderID: order.ID}
	for _, item := range grouped[order.ID] {
		summary.TotalAmount += Revenue(item)
		summary.TotalTaxes += TaxAmount(item)
	}
	return summary
}

// YearMonth takes the first two dash-separated components of an ISO-like
// date string. The tokens are returned as-is; a month of "13" passes
// through untouched.
func YearMonth(date string) (string, string, error) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q has no year-month prefix", ErrInvalidDate, date)
	}
	return parts[0], parts[1], nil
}

type monthlyBucket struct {
	amount float64
	taxes  float64
	count  int
}

// MonthlyAverages averages summary totals per (year, month) of the parent
// order's date. Output order follows bucket creation; callers needing a
// deterministic order sort the result themselves.
func MonthlyAverages(orders []domain.Order, summaries []domain.OrderSummary) ([]domain.MonthlyAverage, error) {
	byID := make(map[int]domain.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	type key struct{ year, month string }
	buckets := make(map[key]*monthlyBucket)
	var keys []key

	for _, summary := range summaries {
		order, ok := byID[summary.OrderID]
		if !ok {
			return nil, fmt.Errorf("%w: summary references order %d", ErrUnknownOrder, summary.OrderID)
		}
		year, month, err := YearMonth(order.OrderDate)
		if err != nil {
			return nil, err
		}

		k := key{year: year, month: month}
		bucket, ok := buckets[k]
		if !ok {
			bucket = &monthlyBucket{}
			buckets[k] = bucket
			keys = append(keys, k)
		}
		bucket.amount += summary.TotalAmount
		bucket.taxes += summary.TotalTaxes
		bucket.count++
	}

	averages := make([]domain.MonthlyAverage, 0, len(keys))
	for _, k := range keys {
		bucket := buckets[k]
		averages = append(averages, domain.MonthlyAverage{
			Year:      k.year,
			Month:     k.month,
			AvgAmount: bucket.amount / float64(bucket.count),
			AvgTaxes:  bucket.taxes / float64(bucket.count),
		})
	}
	return averages, nil
}
