package domain

// FontID identifies a font from the fixed family/weight/style enumeration.
// The enumeration maps onto the standard PDF core font families, so no font
// files need to be embedded or shipped with the service.
type FontID string

// Supported fonts.
const (
	FontSerif           FontID = "serif-regular"
	FontSerifBold       FontID = "serif-bold"
	FontSerifItalic     FontID = "serif-italic"
	FontSerifBoldItalic FontID = "serif-bold-italic"
	FontSans            FontID = "sans-regular"
	FontSansBold        FontID = "sans-bold"
	FontSansOblique     FontID = "sans-oblique"
	FontMono            FontID = "monospace-regular"
	FontMonoBold        FontID = "monospace-bold"
)

// fontFaces maps each FontID to a PDF core font family and style string.
var fontFaces = map[FontID]struct {
	family string
	style  string
}{
	FontSerif:           {"Times", ""},
	FontSerifBold:       {"Times", "B"},
	FontSerifItalic:     {"Times", "I"},
	FontSerifBoldItalic: {"Times", "BI"},
	FontSans:            {"Helvetica", ""},
	FontSansBold:        {"Helvetica", "B"},
	FontSansOblique:     {"Helvetica", "I"},
	FontMono:            {"Courier", ""},
	FontMonoBold:        {"Courier", "B"},
}

// Face returns the PDF core font family and style string for the font.
// The second return value is false for unknown font identifiers.
func (f FontID) Face() (family string, style string, ok bool) {
	face, ok := fontFaces[f]
	return face.family, face.style, ok
}
