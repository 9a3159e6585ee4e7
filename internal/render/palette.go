package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// stripeColors is the classic warming-stripes map: the 8 most saturated
// colors from the ColorBrewer 9-class Blues and Reds scales.
var stripeColors = []color.Color{
	color.RGBA{0x08, 0x30, 0x6b, 0xff},
	color.RGBA{0x08, 0x51, 0x9c, 0xff},
	color.RGBA{0x21, 0x71, 0xb5, 0xff},
	color.RGBA{0x42, 0x92, 0xc6, 0xff},
	color.RGBA{0x6b, 0xae, 0xd6, 0xff},
	color.RGBA{0x9e, 0xca, 0xe1, 0xff},
	color.RGBA{0xc6, 0xdb, 0xef, 0xff},
	color.RGBA{0xde, 0xeb, 0xf7, 0xff},
	color.RGBA{0xfe, 0xe0, 0xd2, 0xff},
	color.RGBA{0xfc, 0xbb, 0xa1, 0xff},
	color.RGBA{0xfc, 0x92, 0x72, 0xff},
	color.RGBA{0xfb, 0x6a, 0x4a, 0xff},
	color.RGBA{0xef, 0x3b, 0x2c, 0xff},
	color.RGBA{0xcb, 0x18, 0x1d, 0xff},
	color.RGBA{0xa5, 0x0f, 0x15, 0xff},
	color.RGBA{0x67, 0x00, 0x0d, 0xff},
}

// stripeColor maps an anomaly to one of the stripe colors, scaled
// linearly over [min, max].
func stripeColor(v, min, max float64) color.Color {
	if max <= min {
		return stripeColors[len(stripeColors)/2]
	}
	idx := int((v - min) / (max - min) * float64(len(stripeColors)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(stripeColors) {
		idx = len(stripeColors) - 1
	}
	return stripeColors[idx]
}

// divergingMap builds a blue-to-red colormap over [min, max], used to
// color bar charts and the close chart's gradient field.
func divergingMap(min, max float64) palette.ColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(min)
	cm.SetMax(max)
	return cm
}

// colorAt samples the colormap with the value clamped to its range.
func colorAt(cm palette.ColorMap, v float64) color.Color {
	if v < cm.Min() {
		v = cm.Min()
	}
	if v > cm.Max() {
		v = cm.Max()
	}
	c, err := cm.At(v)
	if err != nil {
		return color.Gray{Y: 0x80}
	}
	return c
}
