package parse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDate_RussianMonths(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		month string
		year  string
		want  string
	}{
		{"genitive month", "15", "марта", "2024", "2024-03-15"},
		{"nominative month", "1", "Январь", "2023", "2023-01-01"},
		{"numeric month", "7", "12", "2022", "2022-12-07"},
		{"uppercase genitive", "9", "ДЕКАБРЯ", "2021", "2021-12-09"},
		{"two digit year", "5", "мая", "24", "2024-05-05"},
		{"whitespace around cells", " 15 ", " марта ", " 2024 ", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.day, tt.month, tt.year)
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestDate_Defaults(t *testing.T) {
	currentYear := time.Now().Year()

	// Missing day defaults to 1
	got := Date("", "марта", "2024")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-03-01", got.Format("2006-01-02"))
	}

	// Unknown month name falls back to January
	got = Date("10", "not-a-month", "2024")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-01-10", got.Format("2006-01-02"))
	}

	// Missing month defaults to January
	got = Date("10", "", "2024")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-01-10", got.Format("2006-01-02"))
	}

	// Missing year defaults to the current year
	got = Date("10", "марта", "")
	if assert.NotNil(t, got) {
		assert.Equal(t, currentYear, got.Year())
	}

	// Corrupted year cells clamp to the current year
	got = Date("10", "марта", "3024")
	if assert.NotNil(t, got) {
		assert.Equal(t, currentYear, got.Year())
	}
	got = Date("10", "марта", "1500")
	if assert.NotNil(t, got) {
		assert.Equal(t, currentYear, got.Year())
	}
}

func TestDate_Invalid(t *testing.T) {
	// Impossible calendar dates
	assert.Nil(t, Date("31", "февраля", "2024"))
	assert.Nil(t, Date("32", "января", "2024"))
	assert.Nil(t, Date("0", "января", "2024"))

	// Numeric month out of range
	assert.Nil(t, Date("1", "13", "2024"))

	// Non-numeric day or year cells
	assert.Nil(t, Date("abc", "марта", "2024"))
	assert.Nil(t, Date("15", "марта", "20x4"))

	// Leap year handling
	assert.NotNil(t, Date("29", "февраля", "2024"))
	assert.Nil(t, Date("29", "февраля", "2023"))
}

func TestShortDate(t *testing.T) {
	got := ShortDate("05.03.24")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-03-05", got.Format("2006-01-02"))
	}

	assert.Nil(t, ShortDate(""))
	assert.Nil(t, ShortDate("2024-03-05"))
	assert.Nil(t, ShortDate("35.03.24"))
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1000.00", "1000"},
		{"dollar sign", "$950.50", "950.5"},
		{"thousands separator", "1,234.56", "1234.56"},
		{"spaces", " 1 000.00 ", "1000"},
		{"empty", "", "0"},
		{"garbage", "n/a", "0"},
		{"negative", "-15.25", "-15.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			assert.True(t, Decimal(tt.in).Equal(want), "Decimal(%q)", tt.in)
		})
	}
}

func TestDecimal_OverflowClamp(t *testing.T) {
	// Scientific-notation artifacts and any magnitude >= 1e8 clamp to zero
	for _, in := range []string{"9.11E+20", "100000000", "-100000000", "1E+8", "123456789012"} {
		assert.True(t, Decimal(in).IsZero(), "Decimal(%q) should clamp to zero", in)
	}

	// Just under the cap survives
	assert.Equal(t, "99999999.99", Decimal("99999999.99").String())
}

func TestBoolean(t *testing.T) {
	for _, in := range []string{"да", "Да", "ДА", "yes", "YES", "true", "1", "+", "received", "Done", " да "} {
		assert.True(t, Boolean(in), "Boolean(%q)", in)
	}
	for _, in := range []string{"", "нет", "no", "0", "-", "false", "2", "да нет"} {
		assert.False(t, Boolean(in), "Boolean(%q)", in)
	}
}

func TestBoundedInt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *int64
	}{
		{"plain", "1001", int64Ptr(1001)},
		{"float formatted", "123.0", int64Ptr(123)},
		{"comma decimal point", "123,0", int64Ptr(123)},
		{"scientific in range", "9.11E+10", int64Ptr(91100000000)},
		{"empty", "", nil},
		{"garbage", "id-42", nil},
		{"overflows int64", "9.11E+30", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundedInt(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
			} else if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestRowHash(t *testing.T) {
	row := []string{"@alice", "1000.00", "да"}

	// Stable for identical content
	assert.Equal(t, RowHash(row), RowHash([]string{"@alice", "1000.00", "да"}))
	assert.Len(t, RowHash(row), 32)

	// Any cell change alters the digest
	assert.NotEqual(t, RowHash(row), RowHash([]string{"@alice", "1000.00", "нет"}))
}

func int64Ptr(v int64) *int64 {
	return &v
}
