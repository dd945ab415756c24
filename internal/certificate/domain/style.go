package domain

// Page dimensions shared by every style: a landscape letter page in points.
// The background art is pre-scaled against these exact constants, so they must
// not vary per style.
const (
	PageWidth  = 792.0
	PageHeight = 612.0
)

// Style is a named visual theme selectable by the buyer.
type Style string

// The fixed enumerated set of styles.
const (
	StyleClassic  Style = "classic"
	StyleBoujie   Style = "boujie"
	StyleLegal    Style = "legal"
	StyleMedical  Style = "medical"
	StyleCreative Style = "creative"
	StyleTech     Style = "tech"
	StyleKids     Style = "kids"
)

// NameTransform selects how the display name is derived from first/last name.
type NameTransform string

const (
	// TransformDefault joins first and last name with a space, case preserved.
	TransformDefault NameTransform = "default"
	// TransformCompact joins first and last name with an underscore and
	// uppercases the result; the degree line is uppercased as well.
	TransformCompact NameTransform = "compact"
)

// TextSlot is a named text placement within a style.
type TextSlot struct {
	// OffsetY is the baseline offset from the bottom edge of the page, in points.
	OffsetY float64
	// Size is the font size in points.
	Size float64
	// Font selects the typeface for this slot.
	Font FontID
}

// StyleDefinition is the immutable layout configuration for one style.
// Every style carries name, degree, and achievement slots; the date slot is
// optional (nil means the style never renders a date line).
type StyleDefinition struct {
	// Background is the file name of the background asset for this style.
	// All backgrounds share one canonical pixel resolution pre-scaled to the
	// page constants above.
	Background string
	// Transform alters how the name and degree strings are derived.
	Transform NameTransform

	Name        TextSlot
	Date        *TextSlot
	Degree      TextSlot
	Achievement TextSlot
}

// styleTable is the process-wide style configuration, defined at startup and
// never mutated.
var styleTable = map[Style]StyleDefinition{
	StyleClassic: {
		Background:  "classic.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 330, Size: 48, Font: FontSerifBold},
		Date:        &TextSlot{OffsetY: 280, Size: 18, Font: FontSerifItalic},
		Degree:      TextSlot{OffsetY: 225, Size: 32, Font: FontSerif},
		Achievement: TextSlot{OffsetY: 170, Size: 16, Font: FontSerif},
	},
	StyleBoujie: {
		Background:  "boujie.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 340, Size: 52, Font: FontSerifBoldItalic},
		Date:        &TextSlot{OffsetY: 285, Size: 18, Font: FontSerifItalic},
		Degree:      TextSlot{OffsetY: 230, Size: 34, Font: FontSerifItalic},
		Achievement: TextSlot{OffsetY: 175, Size: 16, Font: FontSerifItalic},
	},
	StyleLegal: {
		Background:  "legal.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 320, Size: 44, Font: FontSerifBold},
		Date:        &TextSlot{OffsetY: 272, Size: 16, Font: FontSerif},
		Degree:      TextSlot{OffsetY: 220, Size: 30, Font: FontSerifBold},
		Achievement: TextSlot{OffsetY: 168, Size: 14, Font: FontSerif},
	},
	StyleMedical: {
		Background:  "medical.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 325, Size: 46, Font: FontSansBold},
		Date:        &TextSlot{OffsetY: 275, Size: 17, Font: FontSans},
		Degree:      TextSlot{OffsetY: 222, Size: 30, Font: FontSans},
		Achievement: TextSlot{OffsetY: 170, Size: 15, Font: FontSans},
	},
	StyleCreative: {
		Background:  "creative.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 345, Size: 50, Font: FontSansOblique},
		Date:        &TextSlot{OffsetY: 288, Size: 18, Font: FontSans},
		Degree:      TextSlot{OffsetY: 232, Size: 32, Font: FontSansBold},
		Achievement: TextSlot{OffsetY: 176, Size: 16, Font: FontSansOblique},
	},
	// tech renders the compact uppercase_name style and has no date line.
	StyleTech: {
		Background:  "tech.png",
		Transform:   TransformCompact,
		Name:        TextSlot{OffsetY: 330, Size: 40, Font: FontMonoBold},
		Degree:      TextSlot{OffsetY: 240, Size: 26, Font: FontMono},
		Achievement: TextSlot{OffsetY: 180, Size: 14, Font: FontMono},
	},
	StyleKids: {
		Background:  "kids.png",
		Transform:   TransformDefault,
		Name:        TextSlot{OffsetY: 335, Size: 50, Font: FontSansBold},
		Date:        &TextSlot{OffsetY: 282, Size: 18, Font: FontSans},
		Degree:      TextSlot{OffsetY: 228, Size: 30, Font: FontSansBold},
		Achievement: TextSlot{OffsetY: 172, Size: 16, Font: FontSans},
	},
}

// styleOrder keeps listings stable for API responses and CLI output.
var styleOrder = []Style{
	StyleClassic,
	StyleBoujie,
	StyleLegal,
	StyleMedical,
	StyleCreative,
	StyleTech,
	StyleKids,
}

// ParseStyle validates a style identifier against the enumerated set.
func ParseStyle(value string) (Style, error) {
	style := Style(value)
	if _, ok := styleTable[style]; !ok {
		return "", ErrUnknownStyle
	}
	return style, nil
}

// Definition returns the layout configuration for a style.
func Definition(style Style) (StyleDefinition, error) {
	def, ok := styleTable[style]
	if !ok {
		return StyleDefinition{}, ErrUnknownStyle
	}
	return def, nil
}

// Styles returns all styles in stable order.
func Styles() []Style {
	styles := make([]Style, len(styleOrder))
	copy(styles, styleOrder)
	return styles
}
