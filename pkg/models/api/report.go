package api

type OrderSummary struct {
	OrderID     int     `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalTaxes  float64 `json:"total_taxes"`
}

type MonthlyAverage struct {
	Year      string  `json:"year"`
	Month     string  `json:"month"`
	AvgAmount float64 `json:"avg_amount"`
	AvgTaxes  float64 `json:"avg_taxes"`
}

type Error struct {
	Message string `json:"error"`
}
