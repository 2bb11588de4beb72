package traits

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeOutcomeKeyIsStable(t *testing.T) {
	a := Composite{Parts: map[string]Result{
		"nose_width":   Categorical{Value: "Low", Conf: 1},
		"lip_fullness": Categorical{Value: "High", Conf: 1},
	}}
	b := Composite{Parts: map[string]Result{
		"lip_fullness": Categorical{Value: "High", Conf: 0.5},
		"nose_width":   Categorical{Value: "Low", Conf: 0.5},
	}}

	assert.Equal(t, a.OutcomeKey(), b.OutcomeKey())
	assert.Equal(t, `{"lip_fullness":"High","nose_width":"Low"}`, a.OutcomeKey())
	assert.Equal(t, []string{"lip_fullness", "nose_width"}, a.PartNames())
	assert.InDelta(t, 1.0, a.Confidence(), 1e-9)
	assert.InDelta(t, 0.0, Composite{}.Confidence(), 1e-9)
}

func TestUnknownVariant(t *testing.T) {
	var r Result = Unknown{Reason: "rs4988235 absent"}

	assert.True(t, IsUnknown(r))
	assert.True(t, IsUnknown(nil))
	assert.False(t, IsUnknown(Categorical{Value: UnknownLabel}))
	assert.Equal(t, UnknownLabel, r.Label())
	assert.Equal(t, 0.0, r.Confidence())
	assert.Equal(t, KindUnknown, r.Kind())
}

func TestMarshalCarriesKind(t *testing.T) {
	set := Set{
		EyeColor:  Probabilistic{Value: "Brown", Probabilities: map[string]float64{"Brown": 1}, Conf: 1, Model: "m"},
		SkinColor: Continuous{Value: "Light", Index: 0.31, Conf: 0.93, Model: "m"},
		Freckling: Unknown{},
	}

	raw, err := json.Marshal(set)
	require.NoError(t, err)

	decoded := map[string]map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "probabilistic", decoded[EyeColor]["kind"])
	assert.Equal(t, "Brown", decoded[EyeColor]["result"])
	assert.Equal(t, "continuous", decoded[SkinColor]["kind"])
	assert.InDelta(t, 0.31, decoded[SkinColor]["index"], 1e-9)
	assert.Equal(t, "unknown", decoded[Freckling]["kind"])
	assert.Equal(t, UnknownLabel, decoded[Freckling]["result"])
}

func TestSetSummary(t *testing.T) {
	set := Set{
		ApoeGenotype:     Genotyped{Genotype: "e3/e4", Risk: "Elevated", Conf: 1},
		LactoseTolerance: Categorical{Value: "Likely tolerant (TT)", Conf: 1},
		HairColor:        nil,
	}

	summary := set.Summary()
	assert.Equal(t, "e3/e4", summary[ApoeGenotype])
	assert.Equal(t, "Likely tolerant (TT)", summary[LactoseTolerance])
	assert.Equal(t, UnknownLabel, summary[HairColor])
	assert.Len(t, Names(), 13)
}
