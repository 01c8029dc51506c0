package ingest

import (
	"fmt"
	"strconv"

	"github.com/de-tools/order-atlas/pkg/models/domain"
)

const (
	orderFieldCount = 5
	itemFieldCount  = 5
)

// ParseStatus maps a raw status token to its variant. Matching is exact;
// anything outside the known set fails with ErrInvalidEnum.
func ParseStatus(token string) (domain.Status, error) {
	switch token {
	case string(domain.StatusPending):
		return domain.StatusPending, nil
	case string(domain.StatusComplete):
		return domain.StatusComplete, nil
	case string(domain.StatusCancelled):
		return domain.StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidEnum, token)
	}
}

// ParseOrigin maps the single-letter origin token: "P" for point-of-sale
// (paraphysical), "O" for online.
func ParseOrigin(token string) (domain.Origin, error) {
	switch token {
	case "P":
		return domain.OriginParaphysical, nil
	case "O":
		return domain.OriginOnline, nil
	default:
		return "", fmt.Errorf("%w: unknown origin %q", ErrInvalidEnum, token)
	}
}

// ParseOrder converts one raw row into an Order. The row must carry exactly
// the columns [id, client_id, order_date, status, origin].
func ParseOrder(fields []string) (domain.Order, error) {
	if len(fields) != orderFieldCount {
		return domain.Order{}, fmt.Errorf("%w: order row has %d fields, want %d",
			ErrMalformedRecord, len(fields), orderFieldCount)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: order id %q is not an integer", ErrMalformedRecord, fields[0])
	}
	clientID, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: client id %q is not an integer", ErrMalformedRecord, fields[1])
	}

	status, err := ParseStatus(fields[3])
	if err != nil {
		return domain.Order{}, err
	}
	origin, err := ParseOrigin(fields[4])
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:        id,
		ClientID:  clientID,
		OrderDate: fields[2],
		Status:    status,
		Origin:    origin,
	}, nil
}

// ParseOrderItem converts one raw row into an OrderItem. The row must carry
// exactly the columns [order_id, product_id, quantity, price, tax].
func ParseOrderItem(fields []string) (domain.OrderItem, error) {
	if len(fields) != itemFieldCount {
		return domain.OrderItem{}, fmt.Errorf("%w: item row has %d fields, want %d",
			ErrMalformedRecord, len(fields), itemFieldCount)
	}

	orderID, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("%w: order id %q is not an integer", ErrMalformedRecord, fields[0])
	}
	productID, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("%w: product id %q is not an integer", ErrMalformedRecord, fields[1])
	}
	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("%w: quantity %q is not an integer", ErrMalformedRecord, fields[2])
	}
	price, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("%w: price %q is not a number", ErrMalformedRecord, fields[3])
	}
	tax, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("%w: tax %q is not a number", ErrMalformedRecord, fields[4])
	}

	return domain.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		Tax:       tax,
	}, nil
}
