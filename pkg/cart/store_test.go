package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraitsura/storefront/pkg/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func item(id string, price float64, qty int) model.CartItem {
	return model.CartItem{ProductID: id, Name: id, Price: price, Quantity: qty, Category: model.CategoryEDR, Period: model.PeriodMonthly}
}

func TestStore_AddMergesQuantity(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Add(item("edr", 10, 1)))
	require.NoError(t, s.Add(item("soc", 5, 2)))
	require.NoError(t, s.Add(item("edr", 10, 3)))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]model.CartItem{}
	for _, it := range items {
		byID[it.ProductID] = it
	}
	assert.Equal(t, 4, byID["edr"].Quantity)
	assert.Equal(t, model.CategoryEDR, byID["edr"].Category)
	assert.Equal(t, 2, byID["soc"].Quantity)

	total, err := s.Total()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, total, 1e-9)
}

func TestStore_AddRejectsBadItems(t *testing.T) {
	s := openTestStore(t)
	assert.Error(t, s.Add(item("", 1, 1)))
	assert.Error(t, s.Add(item("edr", 1, 0)))
}

func TestStore_UpdateRemoveClear(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Add(item("a", 1, 1)))
	require.NoError(t, s.Add(item("b", 2, 1)))

	require.NoError(t, s.UpdateQuantity("a", 5))
	require.NoError(t, s.UpdateQuantity("b", 0))

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	require.NoError(t, s.Remove("a"))
	require.NoError(t, s.Add(item("c", 3, 1)))
	require.NoError(t, s.Clear())

	items, err = s.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := s.Total()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add(item("edr", 10, 2)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
