package render

import "github.com/lucasb-eyer/go-colorful"

// UI palette
var (
	RgbTerminalGreen = RGB{74, 222, 128}
	RgbDimGreen      = RGB{34, 197, 94}
	RgbPurple        = RGB{192, 132, 252}
	RgbViolet        = RGB{139, 92, 246}
	RgbBlue          = RGB{96, 165, 250}
	RgbCyan          = RGB{79, 193, 255}
	RgbPink          = RGB{244, 114, 182}
	RgbYellow        = RGB{250, 204, 21}
	RgbRed           = RGB{248, 113, 113}
	RgbGray          = RGB{156, 163, 175}
	RgbDarkGray      = RGB{55, 65, 81}
	RgbPanelBg       = RGB{5, 5, 12}
	RgbPanelBorder   = RGB{88, 28, 135}
)

// Rgba builds a gradient stop from 0-255 channels
func Rgba(at float64, r, g, b uint8, alpha float64) Stop {
	return Stop{At: at, Color: RGB{r, g, b}.Colorful(), Alpha: alpha}
}

// Hex parses a #rrggbb color, black on malformed input
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBBlack
	}
	return FromColorful(c)
}
