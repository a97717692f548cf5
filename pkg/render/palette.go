package render

import "image/color"

// palette maps the semantic style tokens emitted by scene assembly to
// concrete colors. Unknown tokens fall back to neutral gray so a new
// token renders visibly instead of failing.
var palette = map[string]color.RGBA{
	"wall":  {0x2b, 0x2b, 0x2b, 0xff},
	"floor": {0xfa, 0xf7, 0xf0, 0xff},

	"zone-living":   {0x8a, 0x5a, 0x2b, 0xff},
	"zone-kitchen":  {0xb0, 0x3a, 0x2a, 0xff},
	"zone-bedroom":  {0x2e, 0x5e, 0x8c, 0xff},
	"zone-bathroom": {0x2a, 0x7a, 0x6a, 0xff},

	"room-living":   {0xf5, 0xe6, 0xc8, 0xff},
	"room-kitchen":  {0xfc, 0xdf, 0xd4, 0xff},
	"room-bedroom":  {0xdc, 0xe9, 0xf7, 0xff},
	"room-bathroom": {0xd6, 0xf0, 0xe9, 0xff},

	"fabric":       {0x9a, 0x7b, 0xb0, 0xff},
	"timber":       {0xa0, 0x6a, 0x3c, 0xff},
	"timber-light": {0xc8, 0x9b, 0x6e, 0xff},
	"slate":        {0x4a, 0x4f, 0x55, 0xff},
	"steel":        {0x7d, 0x85, 0x8c, 0xff},
	"steel-dark":   {0x3a, 0x3f, 0x44, 0xff},
	"appliance":    {0xc0, 0xc6, 0xcc, 0xff},
	"stone":        {0xb5, 0xad, 0x9e, 0xff},
	"porcelain":    {0xee, 0xf2, 0xf5, 0xff},
	"linen":        {0xe8, 0xdc, 0xc8, 0xff},

	"door":   {0x6b, 0x3f, 0x1f, 0xff},
	"window": {0x3a, 0x6e, 0xa5, 0xff},
	"glass":  {0xbf, 0xdc, 0xf2, 0xff},

	"ink":       {0x22, 0x22, 0x22, 0xff},
	"ink-small": {0x44, 0x44, 0x44, 0xff},
	"ink-title": {0x11, 0x11, 0x11, 0xff},
}

var fallback = color.RGBA{0x80, 0x80, 0x80, 0xff}

// resolve returns the color for a style token.
func resolve(token string) color.RGBA {
	if c, ok := palette[token]; ok {
		return c
	}
	return fallback
}
