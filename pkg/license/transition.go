package license

// Transition is the outcome of comparing the current tier with a requested one.
type Transition int

const (
	TransitionRejected Transition = iota
	TransitionUpgrade
	TransitionDowngrade
)

func (t Transition) String() string {
	switch t {
	case TransitionUpgrade:
		return "upgrade"
	case TransitionDowngrade:
		return "downgrade"
	default:
		return "rejected"
	}
}

// ResolveTransition decides how a plan on current moves to target.
// Unknown targets are rejected. A target of equal rank resolves to an upgrade,
// so moving to the current tier never triggers the downgrade cascade.
func ResolveTransition(current PlanType, target string) Transition {
	pt, err := ParsePlanType(target)
	if err != nil {
		return TransitionRejected
	}
	if pt >= current {
		return TransitionUpgrade
	}
	return TransitionDowngrade
}
