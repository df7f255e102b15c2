package catalog

// Category groups product configurations and controls which option sets and
// add-ons apply.
type Category string

// Known categories.
const (
	CategoryPCRoof     Category = "pc_roof"
	CategoryDeckHollow Category = "deck_hollow"
	CategoryDeckSolid  Category = "deck_solid"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPCRoof, CategoryDeckHollow, CategoryDeckSolid:
		return true
	default:
		return false
	}
}

// IsDeck reports whether the category is one of the decking variants.
func (c Category) IsDeck() bool {
	return c == CategoryDeckHollow || c == CategoryDeckSolid
}

// QuantityKind describes how an add-on quantity is normalized.
type QuantityKind string

// Quantity kinds.
const (
	QuantityInteger QuantityKind = "integer"
	QuantityDecimal QuantityKind = "decimal"
)

// ProductConfig is a sellable structure configuration with a fixed unit rate
// in whole dollars per square metre.
type ProductConfig struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	UnitRate int64    `json:"unitRate"`
	Category Category `json:"category"`
}

// ColorOption is a selectable material colour. Swatch is the UI hex used by
// clients to render the option chip.
type ColorOption struct {
	ID     string `json:"id"`
	Swatch string `json:"swatch"`
}

// ShapeOption is a selectable awning shape.
type ShapeOption struct {
	ID     string `json:"id"`
	Swatch string `json:"swatch"`
}

// AddonDefinition is an optional priced extra. UnitPrice is whole dollars per
// unit, metre, step, m², or job depending on the add-on.
type AddonDefinition struct {
	ID         string       `json:"id"`
	Label      string       `json:"label"`
	LabelZh    string       `json:"labelZh"`
	UnitPrice  int64        `json:"unitPrice"`
	UnitLabel  string       `json:"unitLabel"`
	Explain    string       `json:"explain"`
	Kind       QuantityKind `json:"quantityKind"`
	Categories []Category   `json:"categories"`
}

// AppliesTo reports whether the add-on is offered for the given category.
func (a AddonDefinition) AppliesTo(c Category) bool {
	for _, cat := range a.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

var configs = []ProductConfig{
	{ID: "ALU_PC", Label: "Aluminium frame + 3mm Polycarbonate (PC) sheet", UnitRate: 280, Category: CategoryPCRoof},
	{ID: "TIMBER_HOLLOW", Label: "Timber joists + Hollow WPC decking", UnitRate: 260, Category: CategoryDeckHollow},
	{ID: "TIMBER_SOLID", Label: "Timber joists + Solid WPC decking", UnitRate: 290, Category: CategoryDeckSolid},
	{ID: "ALU_HOLLOW", Label: "Aluminium joists + Hollow WPC decking", UnitRate: 330, Category: CategoryDeckHollow},
	{ID: "ALU_SOLID", Label: "Aluminium joists + Solid WPC decking", UnitRate: 360, Category: CategoryDeckSolid},
}

var pcColors = []ColorOption{
	{ID: "Clear", Swatch: "#f3f6ff"},
	{ID: "Light Grey", Swatch: "#cfd5dd"},
	{ID: "Brown Grey", Swatch: "#9a8c7a"},
	{ID: "Dark Grey", Swatch: "#4a4f58"},
}

var deckSolidColors = []ColorOption{
	{ID: "Redwood", Swatch: "#7b3a2e"},
	{ID: "Coffee", Swatch: "#4b2f24"},
	{ID: "Teak", Swatch: "#a06b3a"},
	{ID: "Antique Grey", Swatch: "#6c6c6c"},
}

var deckHollowColors = []ColorOption{
	{ID: "Redwood", Swatch: "#7b3a2e"},
	{ID: "Teak", Swatch: "#a06b3a"},
}

var awningShapes = []ShapeOption{
	{ID: "Straight", Swatch: "#aab3c5"},
	{ID: "Curved", Swatch: "#8fd3ff"},
}

var deckCategories = []Category{CategoryDeckHollow, CategoryDeckSolid}

var addons = []AddonDefinition{
	{
		ID: "rear_beam_raise", Label: "Rear beam raise", LabelZh: "后框升高",
		UnitPrice: 100, UnitLabel: "$100 / m", Explain: "Heighten rear beam (per metre).",
		Kind: QuantityDecimal, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "post_concrete", Label: "Post footing concrete", LabelZh: "立柱挖坑下埋混凝土",
		UnitPrice: 80, UnitLabel: "$80 / post", Explain: "Dig hole + bury post with concrete (per post).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "downpipe_cutout", Label: "Downpipe cut-out & waterproofing", LabelZh: "落水管穿顶切口+防水",
		UnitPrice: 100, UnitLabel: "$100 / job", Explain: "Cut-out through roof sheet + waterproofing (per job).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "corner_structure", Label: "Corner structure", LabelZh: "转角结构",
		UnitPrice: 200, UnitLabel: "$200 / job", Explain: "Corner structural detail (per job).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "triangle_cladding", Label: "Triangle area cladding", LabelZh: "边骨与屋檐三角区侧封",
		UnitPrice: 150, UnitLabel: "$150 / job", Explain: "Cladding for triangle area between edge beam and eave (per job).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "gutter_outboard", Label: "Outboard gutter beam (extra top beam)", LabelZh: "水槽外飘结构（加顶梁）",
		UnitPrice: 200, UnitLabel: "$200 / job", Explain: "Gutter outboard structure requires extra top beam (per job).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "high_work", Label: "High elevation work (>3.3m)", LabelZh: "高空作业（>3.3m）",
		UnitPrice: 300, UnitLabel: "$300 / job", Explain: "Installation height above 3.3m (per job).",
		Kind: QuantityInteger, Categories: []Category{CategoryPCRoof},
	},
	{
		ID: "stairs_steps", Label: "Stairs / steps (per step)", LabelZh: "楼梯/台阶（按级）",
		UnitPrice: 300, UnitLabel: "$300 / step", Explain: "Enter number of steps.",
		Kind: QuantityInteger, Categories: deckCategories,
	},
	{
		ID: "extra_side_cladding", Label: "Extra side cladding beyond 14cm (by area)", LabelZh: "侧封超出14cm部分（按面积）",
		UnitPrice: 120, UnitLabel: "$120 / m²", Explain: "Only the area beyond 14cm (1 board height) is charged.",
		Kind: QuantityDecimal, Categories: deckCategories,
	},
}

// Configs returns the full list of product configurations.
func Configs() []ProductConfig {
	return append([]ProductConfig(nil), configs...)
}

// ConfigByID looks up a product configuration by id.
func ConfigByID(id string) (ProductConfig, bool) {
	for _, c := range configs {
		if c.ID == id {
			return c, true
		}
	}
	return ProductConfig{}, false
}

// AddonByID looks up an add-on definition by id.
func AddonByID(id string) (AddonDefinition, bool) {
	for _, a := range addons {
		if a.ID == id {
			return a, true
		}
	}
	return AddonDefinition{}, false
}

// AddonsFor returns the add-ons offered for the given category, in catalog
// order.
func AddonsFor(c Category) []AddonDefinition {
	result := make([]AddonDefinition, 0, len(addons))
	for _, a := range addons {
		if a.AppliesTo(c) {
			result = append(result, a)
		}
	}
	return result
}

// ColorsFor returns the colour option set for the given category.
func ColorsFor(c Category) []ColorOption {
	switch c {
	case CategoryPCRoof:
		return append([]ColorOption(nil), pcColors...)
	case CategoryDeckSolid:
		return append([]ColorOption(nil), deckSolidColors...)
	case CategoryDeckHollow:
		return append([]ColorOption(nil), deckHollowColors...)
	default:
		return nil
	}
}

// ShapesFor returns the awning shape options, which exist only for pc_roof.
func ShapesFor(c Category) []ShapeOption {
	if c != CategoryPCRoof {
		return nil
	}
	return append([]ShapeOption(nil), awningShapes...)
}
