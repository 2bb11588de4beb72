package condition

import (
	"github.com/odurisile/DNA-Insight/models/constants"
)

const (
	Alzheimers        constants.Condition = "Alzheimers"
	Diabetes          constants.Condition = "Diabetes"
	HeartDisease      constants.Condition = "HeartDisease"
	Obesity           constants.Condition = "Obesity"
	Celiac            constants.Condition = "Celiac"
	Hypertension      constants.Condition = "Hypertension"
	Hemochromatosis   constants.Condition = "Hemochromatosis"
	DominantMutations constants.Condition = "DominantMutations"
)

// Summarised lists the per-condition entries of a risk summary, in report order.
func Summarised() []constants.Condition {
	return []constants.Condition{
		Alzheimers,
		Diabetes,
		HeartDisease,
		Obesity,
		DominantMutations,
		Celiac,
		Hypertension,
		Hemochromatosis,
	}
}
