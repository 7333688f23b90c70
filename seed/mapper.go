package seed

import (
	"math"
	"strconv"
)

// MapToRange interprets a hex chunk as base-16 and interpolates it linearly
// into [min, max]. A chunk that fails to parse counts as zero, so an empty
// or garbage chunk maps to min rather than erroring.
func MapToRange(chunk string, min, max float64, integer bool) float64 {
	raw, err := strconv.ParseUint(chunk, 16, 64)
	if err != nil {
		raw = 0
	}
	maxRaw := math.Pow(16, float64(len(chunk))) - 1
	if maxRaw < 1 {
		maxRaw = 1
	}
	v := min + (float64(raw)/maxRaw)*(max-min)
	if integer {
		return math.Round(v)
	}
	return v
}
