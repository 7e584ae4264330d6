package pattern

// Validation warnings returned by [Validate].
const (
	WarnNoOutline         = "Piece has no outline segments"
	WarnNoName            = "Piece has no name"
	WarnNegativeAllowance = "Seam allowance cannot be negative"
)

// Validate returns human-readable warnings about p. A piece without warnings
// is valid; warnings never prevent a piece from being stored or exported.
func Validate(p *Piece) []string {
	var warnings []string
	if len(p.Outline) == 0 {
		warnings = append(warnings, WarnNoOutline)
	}
	if p.Name == "" {
		warnings = append(warnings, WarnNoName)
	}
	if p.SeamAllowanceMM < 0 {
		warnings = append(warnings, WarnNegativeAllowance)
	}
	return warnings
}
