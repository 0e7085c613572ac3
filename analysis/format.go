package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthKey returns the YYYY-MM prefix of date, or false when date is not a
// YYYY-MM or YYYY-MM-DD string with a month between 01 and 12.
func monthKey(date string) (string, bool) {
	if !dateRegex.MatchString(date) {
		return "", false
	}
	m, _ := strconv.Atoi(date[5:7])
	if m < 1 || m > 12 {
		return "", false
	}
	return date[:7], true
}

// FormatMonth turns a YYYY-MM key into a label such as "Dec 2024". Keys that
// are not well formed are returned unchanged.
func FormatMonth(key string) string {
	k, ok := monthKey(key)
	if !ok {
		return key
	}
	m, _ := strconv.Atoi(k[5:7])
	return monthNames[m-1] + " " + k[:4]
}

// weekday parses a full YYYY-MM-DD date. Month-only dates have no weekday.
func weekday(date string) (time.Weekday, bool) {
	if len(date) != len("2006-01-02") {
		return 0, false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return t.Weekday(), true
}

func isWeekend(date string) bool {
	d, ok := weekday(date)
	return ok && (d == time.Saturday || d == time.Sunday)
}

// FormatCurrency renders a whole-dollar USD amount, e.g. "$1,250,000" or
// "-$3,400".
func FormatCurrency(amount decimal.Decimal) string {
	v := amount.Round(0).IntPart()
	usdPrinter := message.NewPrinter(language.AmericanEnglish)
	if v < 0 {
		return usdPrinter.Sprintf("-$%d", -v)
	}
	return usdPrinter.Sprintf("$%d", v)
}

// FormatPercentage renders a signed percentage with one decimal, e.g. "+12.3%".
func FormatPercentage(value float64) string {
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, value)
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// percentOf returns part/whole*100 rounded to one decimal. A zero whole yields
// 100 when part is positive and 0 otherwise.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		if part.IsPositive() {
			return 100
		}
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}
