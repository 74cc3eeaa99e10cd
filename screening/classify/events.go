package classify

// AbnormalityType tags a detected abnormality. Closed set.
type AbnormalityType string

const (
	AbnormalityWheezing  AbnormalityType = "wheezing"
	AbnormalityIrregular AbnormalityType = "irregular"
	AbnormalityShortness AbnormalityType = "shortness"
	AbnormalityNoise     AbnormalityType = "noise"
)

// AbnormalityEvent is one detected abnormality. Severity drives the ranking
// order; Percentage is the clamped/floored value shown to the user.
type AbnormalityEvent struct {
	Type        AbnormalityType `json:"type"`
	Description string          `json:"description"`
	Severity    float64         `json:"severity"`
	Percentage  int             `json:"percentage"`
}
