package domain

// NutrientProfile holds the eight tracked nutrient values. Two flavors exist:
// per-100g (as extracted from a food detail record) and resolved (scaled to
// the consumed mass). Missing source data leaves a field at 0; absence is a
// zero contribution, never an error.
type NutrientProfile struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`   // grams
	Fat       float64 `json:"fat"`       // grams
	Carbs     float64 `json:"carbs"`     // grams
	Fiber     float64 `json:"fiber"`     // grams
	Sodium    float64 `json:"sodium"`    // milligrams
	Potassium float64 `json:"potassium"` // milligrams
	Magnesium float64 `json:"magnesium"` // milligrams
}

// Add returns the field-wise sum of two profiles, unrounded.
func (n NutrientProfile) Add(o NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories:  n.Calories + o.Calories,
		Protein:   n.Protein + o.Protein,
		Fat:       n.Fat + o.Fat,
		Carbs:     n.Carbs + o.Carbs,
		Fiber:     n.Fiber + o.Fiber,
		Sodium:    n.Sodium + o.Sodium,
		Potassium: n.Potassium + o.Potassium,
		Magnesium: n.Magnesium + o.Magnesium,
	}
}

// SourceTag records how a logged item's nutrients were obtained.
type SourceTag string

const (
	SourceMatched   SourceTag = "matched"   // resolved via the external lookup
	SourceCustom    SourceTag = "custom"    // resolved from a user-defined food
	SourceUnmatched SourceTag = "unmatched" // no usable match; all-zero profile
)

// ResolvedItem is a logged food entry with its final, mass-scaled profile.
// Immutable once created; ID is assigned by the day log at append time.
type ResolvedItem struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name"`
	Grams     float64         `json:"grams"`
	Nutrients NutrientProfile `json:"nutrients"`
	Source    SourceTag       `json:"source"`
}

// DayRecord is one calendar day's ordered list of logged items.
type DayRecord struct {
	Date  string         `json:"date"` // ISO calendar date, e.g. "2026-08-31"
	Items []ResolvedItem `json:"items"`
}

// DailyTotals is derived by summation over a day's items every time it is
// needed; it is never stored, so it can never go stale.
type DailyTotals struct {
	NutrientProfile
	NetCarbs  float64 `json:"netCarbs"`
	ItemCount int     `json:"itemCount"`
}

// CustomFood is a user-defined nutrient profile that bypasses the external
// lookup entirely. The profile is per single serving/unit of the food.
type CustomFood struct {
	Name      string          `json:"name" mapstructure:"name"`
	Nutrients NutrientProfile `json:"nutrients" mapstructure:"nutrients"`
}

// Advisory is one threshold warning derived from a day's totals.
type Advisory struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount"` // deficit or excess, in the rule's unit
}
