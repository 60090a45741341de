//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"hotel-ordering/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches the sentinel with the standard library", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(cause, errs.ErrSequenceUnavailable)

		assert.True(t, errors.Is(err, errs.ErrSequenceUnavailable))
		assert.True(t, cr.Is(err, errs.ErrSequenceUnavailable))
	})

	t.Run("cause stays reachable through the chain", func(t *testing.T) {
		cause := fmt.Errorf("scan: %w", errors.New("no rows"))
		err := errs.Mark(cause, errs.ErrOrderNotFound)

		assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("other sentinels do not match", func(t *testing.T) {
		err := errs.Mark(errors.New("boom"), errs.ErrOrderNotFound)

		assert.False(t, errors.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("nil cause degrades to the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrEmptyCart)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrEmptyCart))
	})

	t.Run("marks stack across layers", func(t *testing.T) {
		inner := errs.Mark(errors.New("no rows"), errs.ErrOrderNotFound)
		outer := errs.Mark(inner, errs.ErrPersistenceFailure)

		assert.True(t, errors.Is(outer, errs.ErrOrderNotFound))
		assert.True(t, errors.Is(outer, errs.ErrPersistenceFailure))
	})
}
