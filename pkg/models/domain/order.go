package domain

type Status string

const (
	StatusPending   Status = "Pending"
	StatusComplete  Status = "Complete"
	StatusCancelled Status = "Cancelled"
)

type Origin string

const (
	OriginParaphysical Origin = "Paraphysical"
	OriginOnline       Origin = "Online"
)

// Order is a single order header row. Immutable once parsed;
// identity is ID (uniqueness assumed, not enforced).
type Order struct {
	ID        int
	ClientID  int
	OrderDate string // ISO-like "YYYY-MM-..."
	Status    Status
	Origin    Origin
}

// OrderItem is one line of an order. Tax is a fractional rate
// (0.05 means 5%), not a whole percent.
type OrderItem struct {
	OrderID   int
	ProductID int
	Quantity  int
	Price     float64
	Tax       float64
}
