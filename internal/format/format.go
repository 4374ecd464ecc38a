package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// byteUnits is indexed by floor(log1024(bytes)).
var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes formats a byte count as a 1024-based magnitude rounded to two
// decimals with trailing zeros dropped: 1024 → "1 KB", 1536 → "1.5 KB".
// Zero (and anything below it) is the literal "0 bytes". Magnitudes past TB
// are expressed in TB.
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 bytes"
	}
	const k = 1024
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	// log(1024^n)/log(1024) can land a hair below n.
	for i+1 < len(byteUnits) && float64(bytes) >= math.Pow(k, float64(i+1)) {
		i++
	}
	v := float64(bytes) / math.Pow(k, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}

// FormatUptime formats a number of seconds as HHhMMmSSs with every field
// zero-padded to two digits. Hours are not capped: 360000 → "100h00m00s".
// Negative input is treated as zero.
func FormatUptime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := seconds/60 - hours*60
	secs := seconds % 60
	return fmt.Sprintf("%02dh%02dm%02ds", hours, minutes, secs)
}

// FormatChartDate formats t as M/D/YYYY without zero padding.
func FormatChartDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatPercent formats a percentage with one decimal place.
// Example: 34.5 → "34.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatMillis formats a request duration in milliseconds.
// Negative values (absent timeTaken) return "---".
func FormatMillis(ms int64) string {
	if ms < 0 {
		return "---"
	}
	return FormatNumber(ms) + " ms"
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
