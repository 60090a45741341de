//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"hotel-ordering/internal/infra"
	"hotel-ordering/internal/pkg/errs"
	"hotel-ordering/internal/usecase/queries"
	"hotel-ordering/tests/common/builder"
	queriesmock "hotel-ordering/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrackingQueries(t *testing.T) {
	t.Run("polling the same number twice returns identical views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		sut := queries.NewTrackingQueries(store)

		view := builder.NewOrderBuilder().WithOrderNumber(42).BuildViewQuery()
		store.EXPECT().FindByNumber(gomock.Any(), int64(42)).Return(view, nil).Times(2)

		first, err := sut.ByNumber(context.Background(), 42)
		require.NoError(t, err)
		second, err := sut.ByNumber(context.Background(), 42)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("repeated reads diverged (-first +second):\n%s", diff)
		}
	})

	t.Run("not found from the store maps to the domain sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		sut := queries.NewTrackingQueries(store)

		store.EXPECT().FindByNumber(gomock.Any(), int64(9999)).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		_, err := sut.ByNumber(context.Background(), 9999)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("by id maps not found the same way", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		sut := queries.NewTrackingQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		_, err := sut.ByID(context.Background(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}

func TestOwnerOrderQueries(t *testing.T) {
	t.Run("passes the hotel scope through to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		sut := queries.NewOwnerOrderQueries(store)

		hotelID := uuid.New()
		items := []*queries.OrderListItem{
			builder.NewOrderBuilder().WithOrderNumber(2).BuildListItem(),
			builder.NewOrderBuilder().WithOrderNumber(1).BuildListItem(),
		}
		store.EXPECT().FindByHotel(gomock.Any(), hotelID).Return(items, nil)

		got, err := sut.ListForHotel(context.Background(), hotelID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
