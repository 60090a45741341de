//go:build unit

package order_test

import (
	"testing"

	"hotel-ordering/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "accepted", "preparing", "ready", "completed", "paid", "cancelled"} {
		st, err := order.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}

	for _, s := range []string{"", "Pending", "delivered", "canceled"} {
		_, err := order.NewStatus(s)
		assert.Error(t, err, "status %q should be rejected", s)
	}
}

func TestStatusTransitionTable(t *testing.T) {
	type transition struct {
		from    order.Status
		to      order.Status
		allowed bool
	}

	cases := []transition{
		{order.StatusPending, order.StatusAccepted, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusPreparing, false}, // no skipping
		{order.StatusPending, order.StatusPaid, false},
		{order.StatusAccepted, order.StatusPreparing, true},
		{order.StatusAccepted, order.StatusCancelled, true},
		{order.StatusAccepted, order.StatusReady, false},
		{order.StatusAccepted, order.StatusPaid, false},
		{order.StatusPreparing, order.StatusReady, true},
		{order.StatusPreparing, order.StatusCancelled, true},
		{order.StatusPreparing, order.StatusCompleted, false},
		{order.StatusReady, order.StatusCompleted, true},
		{order.StatusReady, order.StatusCancelled, true},
		{order.StatusReady, order.StatusPaid, false},
		{order.StatusCompleted, order.StatusPaid, true},
		{order.StatusCompleted, order.StatusCancelled, false}, // completed is past the point of cancelling
		{order.StatusPaid, order.StatusCancelled, false},
		{order.StatusPaid, order.StatusPending, false},
		{order.StatusCancelled, order.StatusPending, false},
		{order.StatusCancelled, order.StatusAccepted, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s, expected allowed=%v", c.from, c.to, c.allowed)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, order.StatusPaid.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())

	for _, s := range []order.Status{
		order.StatusPending, order.StatusAccepted, order.StatusPreparing,
		order.StatusReady, order.StatusCompleted,
	} {
		assert.False(t, s.IsTerminal(), "%s must not be terminal", s)
		assert.NotEmpty(t, s.AllowedNext())
	}
}
