package parse

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// months maps Russian month names, including genitive forms as they appear in
// date cells ("15 марта 2024"), to month numbers.
var months = map[string]int{
	"январь": 1, "января": 1,
	"февраль": 2, "февраля": 2,
	"март": 3, "марта": 3,
	"апрель": 4, "апреля": 4,
	"май": 5, "мая": 5,
	"июнь": 6, "июня": 6,
	"июль": 7, "июля": 7,
	"август": 8, "августа": 8,
	"сентябрь": 9, "сентября": 9,
	"октябрь": 10, "октября": 10,
	"ноябрь": 11, "ноября": 11,
	"декабрь": 12, "декабря": 12,
}

// truthy is the recognized set of affirmative cell values.
var truthy = map[string]struct{}{
	"да": {}, "yes": {}, "true": {}, "1": {}, "+": {}, "received": {}, "done": {},
}

// amountCap guards against spreadsheet formula artifacts: values in scientific
// notation like 9.11E+20 are never real currency amounts.
var amountCap = decimal.NewFromInt(100000000)

// Date builds a calendar date from the sheet's separate day/month/year cells.
//
// Missing cells default: day to 1, month to January, year to the current year.
// A month cell may be numeric or a Russian month name (nominative or genitive,
// any case); an unrecognized name falls back to January. Two-digit years get
// 2000 added; years outside [1900, 2100] are clamped to the current year.
//
// Returns nil only when the cells cannot form a valid date: a non-numeric day
// or year cell, or an impossible day/month combination (Feb 31).
func Date(dayStr, monthStr, yearStr string) *time.Time {
	day := 1
	if s := strings.TrimSpace(dayStr); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		day = d
	}

	month := 1
	if s := strings.ToLower(strings.TrimSpace(monthStr)); s != "" {
		if m, err := strconv.Atoi(s); err == nil {
			month = m
		} else if m, ok := months[s]; ok {
			month = m
		}
	}

	year := time.Now().Year()
	if s := strings.TrimSpace(yearStr); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		if y < 100 {
			y += 2000
		}
		if y < 1900 || y > 2100 {
			y = time.Now().Year()
		}
		year = y
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(month, year) {
		return nil
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// ShortDate parses the dd.mm.yy payout dates of the Stripe balance sheet.
// Returns nil for anything that does not match.
func ShortDate(s string) *time.Time {
	t, err := time.Parse("02.01.06", strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &t
}

// Decimal parses a currency cell. Dollar signs, spaces and thousands-separator
// commas are stripped. Unparseable text yields zero, never an error, and any
// magnitude of 100,000,000 or more yields zero as well.
func Decimal(s string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero
	}

	val, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if val.Abs().GreaterThanOrEqual(amountCap) {
		return decimal.Zero
	}
	return val
}

// Boolean reports whether the cell is one of the recognized affirmative
// values, case-insensitively. Everything else, including empty, is false.
func Boolean(s string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// BoundedInt parses an identifier cell that may be float-formatted ("123.0")
// or use a comma decimal point. Returns nil when the cell is empty, cannot be
// parsed, or its magnitude overflows an int64 column (scientific-notation
// identifiers like 9.11E+30 must never reach the database).
func BoundedInt(s string) *int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if cleaned == "" {
		return nil
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, use >= so the conversion
	// below can never overflow.
	if math.IsNaN(f) || math.Abs(f) >= float64(math.MaxInt64) {
		return nil
	}

	v := int64(f)
	return &v
}

// RowHash returns a stable hex digest of the raw row, used for cheap
// change detection between syncs.
func RowHash(row []string) string {
	data, err := json.Marshal(row)
	if err != nil {
		return ""
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func daysIn(month, year int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
