package xcept

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("no_panic", func(t *testing.T) {
		require.NoError(t, Recover(func() {}))
	})

	t.Run("xcept_panic_becomes_error", func(t *testing.T) {
		err := Recover(func() { Errored[int](3).Unwrap() })
		require.True(t, IsUnhandled(err))
	})

	t.Run("foreign_panic_is_reraised", func(t *testing.T) {
		require.PanicsWithValue(t, "boom", func() {
			_ = Recover(func() { panic("boom") })
		})
	})
}
