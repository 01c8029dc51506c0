package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/aggregate"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
)

// OrderStore supplies the two row sets the pipeline works over.
type OrderStore interface {
	LoadOrders(ctx context.Context) ([]domain.Order, error)
	LoadItems(ctx context.Context) ([]domain.OrderItem, error)
}

// Controller runs the full pipeline for the CLI and web surfaces.
type Controller interface {
	// Summaries filters the loaded orders by the raw status/origin tokens
	// and returns one summary per surviving order.
	Summaries(ctx context.Context, status, origin string) ([]domain.OrderSummary, error)
	// MonthlyReport summarizes like Summaries and averages the totals per
	// (year, month) of the order dates.
	MonthlyReport(ctx context.Context, status, origin string) ([]domain.MonthlyAverage, error)
}

type controller struct {
	store OrderStore
}

func NewController(store OrderStore) Controller {
	return &controller{store: store}
}

func (c *controller) Summaries(ctx context.Context, status, origin string) ([]domain.OrderSummary, error) {
	orders, items, st, org, err := c.load(ctx, status, origin)
	if err != nil {
		return nil, err
	}
	return ProcessOrders(orders, items, st, org), nil
}

func (c *controller) MonthlyReport(ctx context.Context, status, origin string) ([]domain.MonthlyAverage, error) {
	orders, items, st, org, err := c.load(ctx, status, origin)
	if err != nil {
		return nil, err
	}

	summaries := ProcessOrders(orders, items, st, org)
	averages, err := aggregate.MonthlyAverages(orders, summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly averages: %w", err)
	}
	return averages, nil
}

func (c *controller) load(
	ctx context.Context,
	status, origin string,
) ([]domain.Order, []domain.OrderItem, domain.Status, domain.Origin, error) {
	logger := zerolog.Ctx(ctx)

	st, err := ingest.ParseStatus(status)
	if err != nil {
		return nil, nil, "", "", err
	}
	org, err := ingest.ParseOrigin(origin)
	if err != nil {
		return nil, nil, "", "", err
	}

	orders, err := c.store.LoadOrders(ctx)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("failed to load orders: %w", err)
	}
	items, err := c.store.LoadItems(ctx)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("failed to load order items: %w", err)
	}

	logger.Debug().
		Int("orders", len(orders)).
		Int("items", len(items)).
		Str("status", string(st)).
		Str("origin", string(org)).
		Msg("loaded order data")

	return orders, items, st, org, nil
}
