package risk

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/odurisile/DNA-Insight/models/constants"

	yaml "gopkg.in/yaml.v2"
)

//go:embed panels.yml
var panelsYml []byte

type GenePanel struct {
	Gene  string   `yaml:"gene"`
	Rsids []string `yaml:"rsids"`
}

type Panels struct {
	Recessive  []GenePanel                      `yaml:"recessive"`
	Dominant   []GenePanel                      `yaml:"dominant"`
	Conditions map[constants.Condition][]string `yaml:"conditions"`
}

// ConditionsOf lists the summary conditions a dominant gene bears on.
func (p *Panels) ConditionsOf(gene string) []constants.Condition {
	var out []constants.Condition
	for c, genes := range p.Conditions {
		for _, g := range genes {
			if strings.EqualFold(g, gene) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func ParsePanels(data []byte) (*Panels, error) {
	var p Panels
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing gene panels: %w", err)
	}
	return &p, nil
}

// DefaultPanels is the curated set shipped with the binary.
func DefaultPanels() *Panels {
	p, err := ParsePanels(panelsYml)
	if err != nil {
		panic(err)
	}
	return p
}
