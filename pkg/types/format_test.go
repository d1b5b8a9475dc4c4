package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{"parquet", FormatParquet},
		{"sqlite", FormatSQLite},
		{"db", FormatSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	for _, in := range []string{"", "json", "excel", "CSV"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFormat(in)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatCSV.Valid())
	assert.True(t, FormatParquet.Valid())
	assert.True(t, FormatSQLite.Valid())
	assert.False(t, Format("json").Valid())
	assert.False(t, Format("").Valid())
}
