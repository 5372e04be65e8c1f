package checkout

// Step is one stage of the linear order-placement wizard.
type Step int

const (
	StepCartReview Step = iota
	StepContactInfo
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepCartReview:
		return "cart review"
	case StepContactInfo:
		return "contact info"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}
