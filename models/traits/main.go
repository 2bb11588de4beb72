// Package traits defines the closed set of phenotype result shapes.
//
// Every trait model returns one of the concrete types below. Consumers switch
// on the concrete type (or Kind) instead of probing loosely typed maps, and the
// Unknown case is its own variant rather than a magic string.
package traits

import (
	"encoding/json"
	"sort"
)

type Kind string

const (
	KindProbabilistic Kind = "probabilistic"
	KindContinuous    Kind = "continuous"
	KindCategorical   Kind = "categorical"
	KindComposite     Kind = "composite"
	KindGenotyped     Kind = "genotyped"
	KindUnknown       Kind = "unknown"
)

const UnknownLabel = "Unknown"

// Trait names, as reported.
const (
	EyeColor           = "eye_color"
	HairColor          = "hair_color"
	SkinColor          = "skin_color"
	Freckling          = "freckling"
	TanningResponse    = "tanning_response"
	FaceShape          = "face_shape"
	LactoseTolerance   = "lactose_tolerance"
	CaffeineMetabolism = "caffeine_metabolism"
	MusclePerformance  = "muscle_performance"
	AlcoholFlush       = "alcohol_flush"
	NicotineDependence = "nicotine_dependence"
	FolateMetabolism   = "folate_metabolism"
	ApoeGenotype       = "apoe_genotype"
)

func Names() []string {
	return []string{
		EyeColor, HairColor, SkinColor,
		Freckling, TanningResponse, FaceShape,
		LactoseTolerance, CaffeineMetabolism, MusclePerformance,
		AlcoholFlush, NicotineDependence, FolateMetabolism,
		ApoeGenotype,
	}
}

// Result is implemented only by the types in this package.
type Result interface {
	Kind() Kind
	Label() string
	Confidence() float64
	// OutcomeKey is the stable string a Monte Carlo tally counts.
	OutcomeKey() string
	sealed()
}

// Probabilistic is a categorical call backed by a probability simplex.
type Probabilistic struct {
	Value         string             `json:"result"`
	Probabilities map[string]float64 `json:"probabilities"`
	Conf          float64            `json:"confidence"`
	Model         string             `json:"model"`
}

func (r Probabilistic) Kind() Kind          { return KindProbabilistic }
func (r Probabilistic) Label() string       { return r.Value }
func (r Probabilistic) Confidence() float64 { return r.Conf }
func (r Probabilistic) OutcomeKey() string  { return r.Value }
func (Probabilistic) sealed()               {}

func (r Probabilistic) MarshalJSON() ([]byte, error) {
	type alias Probabilistic
	return marshalTagged(r.Kind(), alias(r))
}

// Continuous is a point on one ordered axis, snapped to the nearest label.
type Continuous struct {
	Value string  `json:"result"`
	Index float64 `json:"index"`
	Conf  float64 `json:"confidence"`
	Model string  `json:"model"`
}

func (r Continuous) Kind() Kind          { return KindContinuous }
func (r Continuous) Label() string       { return r.Value }
func (r Continuous) Confidence() float64 { return r.Conf }
func (r Continuous) OutcomeKey() string  { return r.Value }
func (Continuous) sealed()               {}

func (r Continuous) MarshalJSON() ([]byte, error) {
	type alias Continuous
	return marshalTagged(r.Kind(), alias(r))
}

// Categorical is a thresholded or looked-up label.
type Categorical struct {
	Value string  `json:"result"`
	Conf  float64 `json:"confidence"`
	Score float64 `json:"score"`
}

func (r Categorical) Kind() Kind          { return KindCategorical }
func (r Categorical) Label() string       { return r.Value }
func (r Categorical) Confidence() float64 { return r.Conf }
func (r Categorical) OutcomeKey() string  { return r.Value }
func (Categorical) sealed()               {}

func (r Categorical) MarshalJSON() ([]byte, error) {
	type alias Categorical
	return marshalTagged(r.Kind(), alias(r))
}

// Composite groups named sub-results (e.g. facial morphology).
type Composite struct {
	Parts map[string]Result `json:"parts"`
}

func (r Composite) Kind() Kind { return KindComposite }

// Label is the same deterministic rendering used for tallying.
func (r Composite) Label() string { return r.OutcomeKey() }

// Confidence is the mean confidence of the parts.
func (r Composite) Confidence() float64 {
	if len(r.Parts) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range r.Parts {
		total += p.Confidence()
	}
	return total / float64(len(r.Parts))
}

// OutcomeKey renders the part labels as JSON with sorted keys so that two
// structurally equal composites produce the same key.
func (r Composite) OutcomeKey() string {
	labels := make(map[string]string, len(r.Parts))
	for name, p := range r.Parts {
		labels[name] = p.Label()
	}
	b, _ := json.Marshal(labels) // map keys are emitted sorted
	return string(b)
}

func (Composite) sealed() {}

func (r Composite) MarshalJSON() ([]byte, error) {
	type alias Composite
	return marshalTagged(r.Kind(), alias(r))
}

// PartNames returns the part names in sorted order.
func (r Composite) PartNames() []string {
	names := make([]string, 0, len(r.Parts))
	for n := range r.Parts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Genotyped is a haplotype-style call with a qualitative risk (APOE).
type Genotyped struct {
	Genotype string  `json:"genotype"`
	Risk     string  `json:"risk"`
	Conf     float64 `json:"confidence"`
}

func (r Genotyped) Kind() Kind          { return KindGenotyped }
func (r Genotyped) Label() string       { return r.Genotype }
func (r Genotyped) Confidence() float64 { return r.Conf }
func (r Genotyped) OutcomeKey() string  { return r.Genotype }
func (Genotyped) sealed()               {}

func (r Genotyped) MarshalJSON() ([]byte, error) {
	type alias Genotyped
	return marshalTagged(r.Kind(), alias(r))
}

// Unknown reports that the model had nothing to work with.
type Unknown struct {
	Reason string `json:"reason,omitempty"`
}

func (r Unknown) Kind() Kind          { return KindUnknown }
func (r Unknown) Label() string       { return UnknownLabel }
func (r Unknown) Confidence() float64 { return 0 }
func (r Unknown) OutcomeKey() string  { return UnknownLabel }
func (Unknown) sealed()               {}

func (r Unknown) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"kind":       r.Kind(),
		"result":     UnknownLabel,
		"confidence": 0.0,
		"reason":     r.Reason,
	})
}

// IsUnknown reports whether r carries no information.
func IsUnknown(r Result) bool {
	if r == nil {
		return true
	}
	_, ok := r.(Unknown)
	return ok
}

// Set is the full trait bundle keyed by trait name.
type Set map[string]Result

// Summary collapses every trait to its outcome key.
func (s Set) Summary() map[string]string {
	out := make(map[string]string, len(s))
	for name, r := range s {
		if r == nil {
			out[name] = UnknownLabel
			continue
		}
		out[name] = r.OutcomeKey()
	}
	return out
}

// marshalTagged flattens v into an object and adds the kind discriminator.
func marshalTagged(kind Kind, v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	k, _ := json.Marshal(kind)
	fields["kind"] = k
	return json.Marshal(fields)
}
