// Package phenotype predicts visible and metabolic traits from a genome.
// Every model is a pure function of the genome.
package phenotype

import (
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/traits"
	"github.com/odurisile/DNA-Insight/services/risk"
)

type model func(genome.Genome) traits.Result

var models = map[string]model{
	traits.EyeColor:           PredictEye,
	traits.HairColor:          PredictHair,
	traits.SkinColor:          PredictSkin,
	traits.Freckling:          PredictFreckling,
	traits.TanningResponse:    PredictTanning,
	traits.FaceShape:          PredictFace,
	traits.LactoseTolerance:   PredictLactose,
	traits.CaffeineMetabolism: PredictCaffeine,
	traits.MusclePerformance:  PredictMuscle,
	traits.AlcoholFlush:       PredictAlcoholFlush,
	traits.NicotineDependence: PredictNicotine,
	traits.FolateMetabolism:   PredictFolate,
	traits.ApoeGenotype:       PredictAPOE,
}

// Predict runs every trait model.
func Predict(g genome.Genome) traits.Set {
	set := make(traits.Set, len(models))
	for name, m := range models {
		set[name] = m(g)
	}
	return set
}

// PredictAPOE renders the risk engine's APOE call as a trait.
func PredictAPOE(g genome.Genome) traits.Result {
	apoe := risk.ClassifyAPOE(g)
	// present but uninterpretable keeps its partial confidence
	if apoe.Genotype == risk.UnknownGenotype && apoe.Confidence == 0 {
		return traits.Unknown{Reason: "APOE variants not called"}
	}
	return traits.Genotyped{
		Genotype: apoe.Genotype,
		Risk:     string(apoe.Risk),
		Conf:     apoe.Confidence,
	}
}

// Predictor adapts Predict for callers that take an interface.
type Predictor struct{}

func (Predictor) Predict(g genome.Genome) traits.Set { return Predict(g) }
