package license

import "fmt"

// PlanType identifies a subscription tier. The discriminant is the tier rank,
// lowest first, so tiers compare with the usual integer operators.
type PlanType int

const (
	Single PlanType = iota
	Plus
	Infinite
)

// Unlimited marks a plan allowance with no website cap.
const Unlimited int64 = -1

var planTypeNames = [...]string{
	Single:   "Single",
	Plus:     "Plus",
	Infinite: "Infinite",
}

// PlanTypes returns every tier ordered by rank.
func PlanTypes() []PlanType {
	return []PlanType{Single, Plus, Infinite}
}

// ParsePlanType resolves a tier by its exact, case-sensitive name.
func ParsePlanType(s string) (PlanType, error) {
	for i, name := range planTypeNames {
		if name == s {
			return PlanType(i), nil
		}
	}
	return 0, ErrPlanType
}

// Valid reports whether t belongs to the closed tier set.
func (t PlanType) Valid() bool {
	return t >= Single && t <= Infinite
}

func (t PlanType) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return planTypeNames[t]
}

// MarshalText encodes the tier by name so snapshots never carry raw ranks.
func (t PlanType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrPlanType
	}
	return []byte(t.String()), nil
}

func (t *PlanType) UnmarshalText(b []byte) error {
	pt, err := ParsePlanType(string(b))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

type tierTerms struct {
	allowance int64
	price     Money
}

var tiers = map[PlanType]tierTerms{
	Single:   {allowance: 1, price: Money{Amount: 4900, Currency: "USD"}},
	Plus:     {allowance: 3, price: Money{Amount: 9900, Currency: "USD"}},
	Infinite: {allowance: Unlimited, price: Money{Amount: 24900, Currency: "USD"}},
}

// Every tier must carry terms with a valid ISO 4217 price.
func init() {
	for _, pt := range PlanTypes() {
		terms, ok := tiers[pt]
		if !ok {
			panic(fmt.Sprintf("license: tier %s has no terms", pt))
		}
		if err := terms.price.Validate(); err != nil {
			panic(fmt.Sprintf("license: tier %s: %v", pt, err))
		}
	}
}
