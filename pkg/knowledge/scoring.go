package knowledge

// ScoringWeights are the deduction constants of the numeric score variant.
// They are heuristic, kept configurable rather than hard-coded; Default()
// carries the values observed in production.
type ScoringWeights struct {
	// ErrorPenalty is deducted per critical finding, up to ErrorCap.
	ErrorPenalty int `yaml:"errorPenalty"`
	ErrorCap     int `yaml:"errorCap"`

	// WarningPenalty is deducted per high-severity finding, up to WarningCap.
	WarningPenalty int `yaml:"warningPenalty"`
	WarningCap     int `yaml:"warningCap"`

	// StructuralPenalty is deducted per structural finding, up to StructuralCap.
	StructuralPenalty int `yaml:"structuralPenalty"`
	StructuralCap     int `yaml:"structuralCap"`

	// OpportunityPenalty is deducted per high-priority opportunity
	// (priority >= OpportunityThreshold), up to OpportunityCap.
	OpportunityPenalty   int `yaml:"opportunityPenalty"`
	OpportunityCap       int `yaml:"opportunityCap"`
	OpportunityThreshold int `yaml:"opportunityThreshold"`

	// NoSchemaPenalty applies once when the page carries no structured
	// data at all.
	NoSchemaPenalty int `yaml:"noSchemaPenalty"`
}

// DefaultScoringWeights returns the production deduction constants.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		ErrorPenalty:         15,
		ErrorCap:             45,
		WarningPenalty:       5,
		WarningCap:           25,
		StructuralPenalty:    8,
		StructuralCap:        24,
		OpportunityPenalty:   3,
		OpportunityCap:       15,
		OpportunityThreshold: 70,
		NoSchemaPenalty:      40,
	}
}
