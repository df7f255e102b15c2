package quote

// CustomLineSlots is the fixed number of manual line item slots on the form.
const CustomLineSlots = 3

// CustomLineEntry is one raw manual line item slot. Both fields are free text;
// inclusion rules are applied by the normalizer.
type CustomLineEntry struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// InputSnapshot captures the raw state of one quoting session exactly as
// entered: dimension and quantity fields stay strings until normalization.
type InputSnapshot struct {
	ProjectName string `json:"projectName"`
	ClientName  string `json:"clientName"`
	SiteAddress string `json:"siteAddress"`

	Length string `json:"length"`
	Width  string `json:"width"`

	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Shape     string `json:"shape"`

	AddonQuantities map[string]string                `json:"addonQuantities"`
	CustomLines     [CustomLineSlots]CustomLineEntry `json:"customLines"`

	DepositPaid bool `json:"depositPaid"`
}

// NewSnapshot returns the default snapshot a fresh session starts with.
func NewSnapshot() InputSnapshot {
	return InputSnapshot{
		Length:          "0.00",
		Width:           "0.00",
		AddonQuantities: map[string]string{},
	}
}

// ClearSelection resets the fields invalidated by a configuration switch:
// colour, shape, and all add-on quantities. Custom lines, dimensions, and
// project metadata survive.
func (s *InputSnapshot) ClearSelection() {
	s.Color = ""
	s.Shape = ""
	s.AddonQuantities = map[string]string{}
}
