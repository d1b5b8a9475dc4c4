package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTruncate(t *testing.T) {
	r := &Result{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}

	t.Run("caps at limit", func(t *testing.T) {
		got := r.Truncate(2)
		assert.Equal(t, 2, got.RowCount())
		assert.Equal(t, r.Columns, got.Columns)
		assert.Equal(t, []any{"1", "2"}, got.Rows[0])
	})

	t.Run("limit of zero returns everything", func(t *testing.T) {
		assert.Equal(t, 3, r.Truncate(0).RowCount())
	})

	t.Run("limit beyond row count returns everything", func(t *testing.T) {
		assert.Equal(t, 3, r.Truncate(10).RowCount())
	})
}
