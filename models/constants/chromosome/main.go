package chromosome

import (
	"strconv"
	"strings"
)

// Normalize strips a leading "chr" and upper-cases the label.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 3 && strings.EqualFold(text[:3], "chr") {
		text = text[3:]
	}
	return strings.ToUpper(text)
}

func IsValidHumanChromosome(text string) bool {
	text = Normalize(text)

	// Check if number can be represented as an int as is non-zero
	chromNumber, _ := strconv.Atoi(text)
	if chromNumber > 0 {
		// 23 is the pseudo-autosomal / X label some vendors use
		if chromNumber <= 26 {
			return true
		}
		return false
	}

	switch text {
	case "X", "Y", "XY":
		return true
	case "M", "MT":
		return true
	}

	return false
}
