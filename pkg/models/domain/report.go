package domain

// OrderSummary is the per-order aggregate of revenue and tax
// across its line items.
type OrderSummary struct {
	OrderID     int
	TotalAmount float64
	TotalTaxes  float64
}

// MonthlyAverage is the mean of summary totals for one (year, month)
// key taken from the parent order's date. Year and month are kept as
// the literal tokens from the date string; no calendar validation.
type MonthlyAverage struct {
	Year      string
	Month     string
	AvgAmount float64
	AvgTaxes  float64
}
