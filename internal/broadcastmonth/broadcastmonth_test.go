package broadcastmonth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "data nativa", value: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), want: "Nov-24"},
		{name: "formato ISO", value: "2025-01-03", want: "Jan-25"},
		{name: "ISO com hora", value: "2025-02-28 10:30:00", want: "Feb-25"},
		{name: "barra americana", value: "3/15/2024", want: "Mar-24"},
		{name: "barra americana com zero", value: "03/15/2024", want: "Mar-24"},
		{name: "já canônico", value: "Dec-23", want: "Dec-23"},
		{name: "string inválida", value: "não é data", wantErr: true},
		{name: "tipo não suportado", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Para toda string Mmm-YY válida, parse seguido de format devolve a mesma string.
func TestParseRoundTrip(t *testing.T) {
	for _, year := range []int{19, 24, 25, 99} {
		for _, month := range MonthsOfYear(year) {
			got, err := Parse(month)
			require.NoError(t, err, month)
			assert.Equal(t, month, got)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	assert.True(t, ValidateFormat("Jan-25"))
	assert.True(t, ValidateFormat("Dec-99"))
	assert.False(t, ValidateFormat("jan-25"), "abreviação deve ser canônica")
	assert.False(t, ValidateFormat("Jan-2025"))
	assert.False(t, ValidateFormat("Janeiro"))
	assert.False(t, ValidateFormat("Foo-25"))
	assert.False(t, ValidateFormat("Jan-2a"))
	assert.False(t, ValidateFormat(""))
}

func TestYear(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"Jan-25", 2025},
		{"Dec-30", 2030},
		{"Nov-31", 1931},
		{"Jun-99", 1999},
		{"Feb-00", 2000},
	}

	for _, tt := range tests {
		got, err := Year(tt.month)
		require.NoError(t, err, tt.month)
		assert.Equal(t, tt.want, got, tt.month)
	}

	_, err := Year("inválido")
	assert.Error(t, err)
}

func TestMonthsOfYear(t *testing.T) {
	months := MonthsOfYear(2025)
	assert.Equal(t, "Jan-25", months[0])
	assert.Equal(t, "Dec-25", months[11])
	for _, m := range months {
		assert.True(t, ValidateFormat(m), m)
	}
}

func TestSortChronological(t *testing.T) {
	months := []string{"Feb-25", "Nov-24", "Jan-25", "Dec-24"}
	SortChronological(months)
	assert.Equal(t, []string{"Nov-24", "Dec-24", "Jan-25", "Feb-25"}, months)
}
