package export

import (
	"slices"
	"strings"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

// SortMonthly returns the averages ordered by (year, month). The
// aggregation itself leaves bucket order unspecified, so the writers
// sort before emitting.
func SortMonthly(averages []domain.MonthlyAverage) []domain.MonthlyAverage {
	sorted := slices.Clone(averages)
	slices.SortFunc(sorted, func(a, b domain.MonthlyAverage) int {
		if c := strings.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return strings.Compare(a.Month, b.Month)
	})
	return sorted
}
