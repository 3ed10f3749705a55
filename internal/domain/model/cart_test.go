package model_test

import (
	"math"
	"testing"

	"storefront/internal/domain/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func item(id string, price string, qty int) model.CartItem {
	return model.CartItem{
		ID:        id,
		Name:      "Ramo " + id,
		UnitPrice: decimal.RequireFromString(price),
		Image:     "https://cdn.example.com/" + id + ".jpg",
		Quantity:  qty,
	}
}

func TestCart_AddItem_MergesByID(t *testing.T) {
	var c model.Cart

	require.NoError(t, c.AddItem(item("p1", "10", 1)))
	require.NoError(t, c.AddItem(item("p1", "10", 1)))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(20)))
}

func TestCart_AddItem_KeepsFirstSnapshot(t *testing.T) {
	var c model.Cart

	require.NoError(t, c.AddItem(item("p1", "10", 1)))

	changed := item("p1", "99", 3)
	changed.Name = "Otro nombre"
	require.NoError(t, c.AddItem(changed))

	got, ok := c.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "Ramo p1", got.Name)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 4, got.Quantity)
}

func TestCart_AddItem_InsertionOrder(t *testing.T) {
	var c model.Cart

	for _, id := range []string{"b", "a", "c", "a"} {
		require.NoError(t, c.AddItem(item(id, "1", 1)))
	}

	ids := make([]string, 0, c.Len())
	for _, it := range c.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestCart_AddItem_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		item    model.CartItem
		wantErr error
	}{
		{name: "empty id", item: item("", "1", 1), wantErr: model.ErrEmptyProductID},
		{name: "zero quantity", item: item("p1", "1", 0), wantErr: model.ErrInvalidQuantity},
		{name: "negative quantity", item: item("p1", "1", -2), wantErr: model.ErrInvalidQuantity},
		{name: "negative price", item: item("p1", "-0.01", 1), wantErr: model.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c model.Cart
			err := c.AddItem(tt.item)
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestCart_AddItem_ZeroPriceAllowed(t *testing.T) {
	var c model.Cart
	require.NoError(t, c.AddItem(item("gift", "0", 2)))
	assert.True(t, c.Total().IsZero())
}

func TestCart_UpdateQuantity(t *testing.T) {
	var c model.Cart
	require.NoError(t, c.AddItem(item("p1", "12.50", 1)))

	require.NoError(t, c.UpdateQuantity("p1", 4))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("50")))

	// floor is enforced by the aggregate
	require.ErrorIs(t, c.UpdateQuantity("p1", 0), model.ErrInvalidQuantity)
	require.ErrorIs(t, c.UpdateQuantity("p1", -1), model.ErrInvalidQuantity)
	got, _ := c.Find("p1")
	assert.Equal(t, 4, got.Quantity)

	// unknown id is a no-op
	require.NoError(t, c.UpdateQuantity("nope", 3))
	assert.Equal(t, 1, c.Len())
}

func TestCart_QuantityIsCapped(t *testing.T) {
	var c model.Cart

	require.ErrorIs(t, c.AddItem(item("p1", "10", math.MaxInt)), model.ErrInvalidQuantity)
	require.ErrorIs(t, c.AddItem(item("p1", "10", model.MaxQuantity+1)), model.ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.AddItem(item("p1", "10", model.MaxQuantity)))

	// merge past the cap leaves the line untouched
	require.ErrorIs(t, c.AddItem(item("p1", "10", 1)), model.ErrInvalidQuantity)
	got, _ := c.Find("p1")
	assert.Equal(t, model.MaxQuantity, got.Quantity)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(10*model.MaxQuantity)))

	require.ErrorIs(t, c.UpdateQuantity("p1", math.MaxInt), model.ErrInvalidQuantity)
	require.NoError(t, c.UpdateQuantity("p1", 1))
	got, _ = c.Find("p1")
	assert.Equal(t, 1, got.Quantity)
}

func TestCart_RemoveThenReAdd(t *testing.T) {
	var c model.Cart
	require.NoError(t, c.AddItem(item("p1", "10", 5)))

	assert.True(t, c.RemoveItem("p1"))
	assert.False(t, c.RemoveItem("p1"))

	require.NoError(t, c.AddItem(item("p1", "10", 1)))
	got, ok := c.Find("p1")
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(10)))
}

func TestCart_Clear(t *testing.T) {
	var c model.Cart
	require.NoError(t, c.AddItem(item("p1", "10", 1)))
	require.NoError(t, c.AddItem(item("p2", "5", 3)))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.Count())
}

func TestCart_TotalTracksEveryMutation(t *testing.T) {
	var c model.Cart

	for i := 0; i < 200; i++ {
		id := gofakeit.RandomString([]string{"a", "b", "c", "d", "e"})

		switch gofakeit.Number(0, 2) {
		case 0:
			price := decimal.NewFromFloat(gofakeit.Price(0, 500)).Round(2)
			_ = c.AddItem(model.CartItem{ID: id, Name: id, UnitPrice: price, Quantity: gofakeit.Number(1, 4)})
		case 1:
			_ = c.UpdateQuantity(id, gofakeit.Number(1, 9))
		case 2:
			c.RemoveItem(id)
		}

		want := decimal.Zero
		for _, it := range c.Items {
			want = want.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		require.True(t, want.Equal(c.Total()), "step %d: want %s got %s", i, want, c.Total())
	}
}

func TestNewCart_NormalizesUntrustedLines(t *testing.T) {
	c := model.NewCart([]model.CartItem{
		item("p1", "10", 1),
		item("", "10", 1),
		item("p2", "3", 0),
		item("p1", "10", 2),
		item("p3", "-1", 1),
		item("p4", "2.5", 2),
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "p1", c.Items[0].ID)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, "p4", c.Items[1].ID)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(35)))
}
