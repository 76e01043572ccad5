package linebreak

// Verdict is the outcome of evaluating one [Rule], or of the rule cascade
// as a whole, for a pair of adjacent classes.
type Verdict int

const (
	// NoOpinion means "consult the next rule". A bare [Rule] may return it;
	// the text-level driver never does, since LB31 supplies Allowed as the
	// cascade's ultimate default.
	NoOpinion Verdict = iota
	Required          // A line must break here.
	Prohibited        // A line must not break here.
	Allowed           // A line may break here.
)

func (v Verdict) String() string {
	switch v {
	case Required:
		return "required"
	case Prohibited:
		return "prohibited"
	case Allowed:
		return "allowed"
	default:
		return ""
	}
}
