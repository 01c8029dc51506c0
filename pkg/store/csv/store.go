package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
)

// Store reads the two delimited sources backing a pipeline run. Each file
// carries a header row that is discarded before rows reach the parsers;
// the first bad row aborts the load.
type Store struct {
	ordersPath string
	itemsPath  string
	delimiter  rune
}

type Settings struct {
	OrdersPath string
	ItemsPath  string
	Delimiter  rune // defaults to ','
}

func NewStore(settings Settings) *Store {
	if settings.Delimiter == 0 {
		settings.Delimiter = ','
	}
	return &Store{
		ordersPath: settings.OrdersPath,
		itemsPath:  settings.ItemsPath,
		delimiter:  settings.Delimiter,
	}
}

func (s *Store) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.readRows(ctx, s.ordersPath)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(rows))
	for i, row := range rows {
		order, err := ingest.ParseOrder(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", s.ordersPath, i+2, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *Store) LoadItems(ctx context.Context) ([]domain.OrderItem, error) {
	rows, err := s.readRows(ctx, s.itemsPath)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(rows))
	for i, row := range rows {
		item, err := ingest.ParseOrderItem(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", s.itemsPath, i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) readRows(ctx context.Context, path string) ([][]string, error) {
	logger := zerolog.Ctx(ctx)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := stdcsv.NewReader(file)
	reader.Comma = s.delimiter
	// Arity checks belong to the parsers, which report them per row.
	reader.FieldsPerRecord = -1

	// Header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s is empty", path)
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("loaded csv rows")
	return rows, nil
}
