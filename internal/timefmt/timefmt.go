// Package timefmt formats media positions for display.
package timefmt

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Format renders a position in seconds as "M:SS".
// Minutes are not capped, so an hour-long file reads "60:00".
// NaN, infinite and negative input render as "0:00".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	// Minutes stay a float so huge inputs cannot overflow an integer.
	minutes := strconv.FormatFloat(math.Floor(seconds/60), 'f', 0, 64)
	remaining := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%s:%02d", minutes, remaining)
}

// FormatDuration renders d as "M:SS".
func FormatDuration(d time.Duration) string {
	return Format(d.Seconds())
}

// Pair renders "position / duration" as shown next to a progress bar.
func Pair(position, duration time.Duration) string {
	return FormatDuration(position) + " / " + FormatDuration(duration)
}
