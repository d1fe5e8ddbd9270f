package domain

// ParsedItem is one food item as extracted by the upstream text-understanding
// service. Quantity, Unit and ExplicitGrams are optional; the extractor has
// already clamped them to sane ranges, so the core treats missing or
// non-finite numbers as simply absent.
type ParsedItem struct {
	Name          string   `json:"name"`
	Query         string   `json:"query"`
	Quantity      *float64 `json:"quantity,omitempty"`
	Unit          string   `json:"unit,omitempty"`
	ExplicitGrams *float64 `json:"explicitGrams,omitempty"`
}

// Count returns the item's quantity, defaulting to 1 when absent.
func (p ParsedItem) Count() float64 {
	if p.Quantity == nil || *p.Quantity <= 0 {
		return 1
	}
	return *p.Quantity
}

// FoodCandidate is a single search hit from the nutrition lookup service,
// carrying just enough to score it. Never persisted.
type FoodCandidate struct {
	FdcID           int    `json:"fdcId"`
	Description     string `json:"description"`
	DataType        string `json:"dataType"`
	HasNutrientData bool   `json:"hasNutrientData"`
}

// NutrientEntry is one normalized nutrient row from a food detail record.
// The raw payload varies in shape across provider versions; the lookup
// adapter flattens every variant into this form.
type NutrientEntry struct {
	NutrientID int     `json:"nutrientId"`
	UnitName   string  `json:"unitName"`
	Amount     float64 `json:"amount"`
}

// FoodDetail is the detail record for one food, normalized from the lookup
// service's response. ServingSize/ServingSizeUnit are optional and only
// usable for mass resolution when the unit is a mass unit.
type FoodDetail struct {
	FdcID           int             `json:"fdcId"`
	Description     string          `json:"description"`
	ServingSize     float64         `json:"servingSize,omitempty"`
	ServingSizeUnit string          `json:"servingSizeUnit,omitempty"`
	Nutrients       []NutrientEntry `json:"foodNutrients"`
}
