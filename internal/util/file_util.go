package util

import (
	"math"
	"strconv"
)

// FormatKB renders a byte count as kilobytes with one decimal, e.g. 12.3.
func FormatKB(sizeBytes float64) string {
	kb := math.Round(sizeBytes/1024*10) / 10
	return strconv.FormatFloat(kb, 'f', 1, 64)
}
