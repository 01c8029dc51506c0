package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/order-atlas/pkg/models/domain"
	"github.com/de-tools/order-atlas/pkg/services/ingest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStore_LoadOrders(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv",
		"id,client_id,order_date,status,origin\n"+
			"1,5,2024-03-15T00:00:00,Complete,O\n"+
			"2,6,2024-04-01T00:00:00,Pending,P\n")

	store := NewStore(Settings{OrdersPath: ordersPath})
	orders, err := store.LoadOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, domain.Order{
		ID: 1, ClientID: 5, OrderDate: "2024-03-15T00:00:00",
		Status: domain.StatusComplete, Origin: domain.OriginOnline,
	}, orders[0])
	assert.Equal(t, domain.StatusPending, orders[1].Status)
	assert.Equal(t, domain.OriginParaphysical, orders[1].Origin)
}

func TestStore_LoadItems(t *testing.T) {
	dir := t.TempDir()
	itemsPath := writeFile(t, dir, "items.csv",
		"order_id,product_id,quantity,price,tax\n"+
			"1,9,2,10.0,0.05\n")

	store := NewStore(Settings{ItemsPath: itemsPath})
	items, err := store.LoadItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.OrderItem{
		OrderID: 1, ProductID: 9, Quantity: 2, Price: 10.0, Tax: 0.05,
	}, items[0])
}

func TestStore_CustomDelimiter(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv",
		"id;client_id;order_date;status;origin\n"+
			"1;5;2024-03-15T00:00:00;Complete;O\n")

	store := NewStore(Settings{OrdersPath: ordersPath, Delimiter: ';'})
	orders, err := store.LoadOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 1, orders[0].ID)
}

func TestStore_MalformedRowAbortsLoad(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv",
		"id,client_id,order_date,status,origin\n"+
			"1,5,2024-03-15T00:00:00,Complete,O\n"+
			"2,6\n")

	store := NewStore(Settings{OrdersPath: ordersPath})
	_, err := store.LoadOrders(context.Background())

	assert.ErrorIs(t, err, ingest.ErrMalformedRecord)
	assert.ErrorContains(t, err, "row 3")
}

func TestStore_InvalidEnumAbortsLoad(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv",
		"id,client_id,order_date,status,origin\n"+
			"1,5,2024-03-15T00:00:00,Shipped,O\n")

	store := NewStore(Settings{OrdersPath: ordersPath})
	_, err := store.LoadOrders(context.Background())

	assert.ErrorIs(t, err, ingest.ErrInvalidEnum)
}

func TestStore_HeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv", "id,client_id,order_date,status,origin\n")

	store := NewStore(Settings{OrdersPath: ordersPath})
	orders, err := store.LoadOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	ordersPath := writeFile(t, dir, "orders.csv", "")

	store := NewStore(Settings{OrdersPath: ordersPath})
	_, err := store.LoadOrders(context.Background())

	assert.ErrorContains(t, err, "empty")
}

func TestStore_MissingFile(t *testing.T) {
	store := NewStore(Settings{OrdersPath: filepath.Join(t.TempDir(), "absent.csv")})
	_, err := store.LoadOrders(context.Background())

	assert.Error(t, err)
}
