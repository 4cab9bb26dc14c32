package render

import (
	ppt "github.com/VantageDataChat/GoPPT"
)

// Background palette keyed by the color names the LLM is asked to use.
// Values are AARRGGBB.
var backgroundColors = map[string]string{
	"blue":       "FF005493",
	"light_blue": "FFDCF0FF",
	"white":      "FFFFFFFF",
	"dark":       "FF222831",
	"gradient":   "FFF0F8FF",
}

const defaultBackground = "white"

// Text colors
const (
	colorTitleText  = "FFFFFFFF"
	colorHeading    = "FF000000"
	colorBody       = "FF333333"
	colorAccentBlue = "FF005493"
)

// BackgroundColor resolves a color name to a GoPPT color, falling back to
// white for unknown names.
func BackgroundColor(name string) ppt.Color {
	argb, ok := backgroundColors[name]
	if !ok {
		argb = backgroundColors[defaultBackground]
	}
	return ppt.NewColor(argb)
}
