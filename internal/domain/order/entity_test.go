//go:build unit

package order_test

import (
	"testing"
	"time"

	"hotel-ordering/internal/domain/order"
	"hotel-ordering/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) order.Money {
	t.Helper()
	m, err := order.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.False(t, actual.IsTerminal())
	})

	t.Run("total is the sum of price times quantity", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, 50, 2),
			mustLineItem(t, 30, 1),
		}
		actual, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = items
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(130), actual.Total().Cents())
	})

	t.Run("table number is trimmed", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.TableNumber = "  12 "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "12", actual.TableNumber())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.OrderBuilder)
			errIs  error
		}{
			{
				name:   "empty cart",
				mutate: func(b *builder.OrderBuilder) { b.Items = nil },
				errIs:  order.ErrEmptyCart,
			},
			{
				name:   "blank table number",
				mutate: func(b *builder.OrderBuilder) { b.TableNumber = "   " },
				errIs:  order.ErrTableNumberRequired,
			},
			{
				name:   "zero order number",
				mutate: func(b *builder.OrderBuilder) { b.OrderNumber = 0 },
				errIs:  order.ErrInvalidOrderNumber,
			},
			{
				name:   "negative order number",
				mutate: func(b *builder.OrderBuilder) { b.OrderNumber = -7 },
				errIs:  order.ErrInvalidOrderNumber,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewOrderBuilder().With(c.mutate).BuildDomain()
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("items are copied in and out", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, 80, 3)}
		actual, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
			b.Items = items
		}).BuildDomain()
		require.NoError(t, err)

		out := actual.Items()
		require.Len(t, out, 1)
		out[0] = mustLineItem(t, 1, 1)
		assert.Equal(t, int64(240), actual.Total().Cents())
		assert.Equal(t, int64(80), actual.Items()[0].Price().Cents())
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("quantity below one is rejected", func(t *testing.T) {
		_, err := order.NewLineItem(uuid.New(), 0, mustMoney(t, 100))
		require.Error(t, err)
		_, err = order.NewLineItem(uuid.New(), -1, mustMoney(t, 100))
		require.Error(t, err)
	})

	t.Run("nil menu item id is rejected", func(t *testing.T) {
		_, err := order.NewLineItem(uuid.Nil, 1, mustMoney(t, 100))
		require.Error(t, err)
	})

	t.Run("subtotal", func(t *testing.T) {
		li := mustLineItem(t, 80, 3)
		assert.Equal(t, int64(240), li.Subtotal().Cents())
	})
}

func TestNewMoney(t *testing.T) {
	_, err := order.NewMoney(-1)
	require.Error(t, err)

	m := mustMoney(t, 50).Add(mustMoney(t, 30))
	assert.Equal(t, int64(80), m.Cents())
}

func TestOrderTransition(t *testing.T) {
	now := time.Now()

	t.Run("pending to accepted succeeds and bumps updatedAt", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		later := now.Add(time.Minute)
		require.NoError(t, o.Transition(order.StatusAccepted, later))
		assert.Equal(t, order.StatusAccepted, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("pending straight to preparing fails", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Transition(order.StatusPreparing, now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("accepted straight to paid fails", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, o.Transition(order.StatusAccepted, now))

		err = o.Transition(order.StatusPaid, now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("full happy path ends terminal", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		for _, next := range []order.Status{
			order.StatusAccepted, order.StatusPreparing, order.StatusReady,
			order.StatusCompleted, order.StatusPaid,
		} {
			require.NoError(t, o.Transition(next, now))
		}
		assert.True(t, o.IsTerminal())

		err = o.Transition(order.StatusCancelled, now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("unknown status is an invalid transition", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.Transition(order.Status("delivered"), now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func mustLineItem(t *testing.T, priceCents int64, qty int32) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(uuid.New(), qty, mustMoney(t, priceCents))
	require.NoError(t, err)
	return li
}
