package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides is the YAML shape accepted by LoadFile. Every section is
// optional; present sections override the defaults per key (requirements,
// platforms) or wholesale (page-type rules, whose order is the contract).
type overrides struct {
	Requirements map[string]Requirement `yaml:"requirements"`
	PageTypes    []PageTypeRule         `yaml:"pageTypes"`
	Platforms    map[string]Platform    `yaml:"platforms"`
	Scoring      *ScoringWeights        `yaml:"scoring"`
}

// LoadFile builds a knowledge base from the defaults plus YAML overrides.
// An engine under test can be handed a reduced rule set this way without
// touching the built-in tables.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge overrides: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides from raw bytes onto the default base.
func Parse(data []byte) (*Base, error) {
	var ov overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse knowledge overrides: %w", err)
	}

	base := Default()
	for name, req := range ov.Requirements {
		base.Requirements[name] = req
	}
	if len(ov.PageTypes) > 0 {
		base.PageTypeRules = ov.PageTypes
	}
	for domain, p := range ov.Platforms {
		base.Platforms[domain] = p
	}
	if ov.Scoring != nil {
		base.Scoring = *ov.Scoring
	}
	return base, nil
}
