package turtle

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/shapecraft/scene"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a color string: either a SVG/X11 color name
// ("red", "light blue", "DarkGreen") or a hexadecimal
// "#rgb" / "#rrggbb" value.
// It returns a *scene.InvalidColorError for anything else.
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHex(s[1:]); ok {
			return c, nil
		}
		return nil, &scene.InvalidColorError{Color: name}
	}
	s = strings.ReplaceAll(s, " ", "")
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, &scene.InvalidColorError{Color: name}
}

func parseHex(s string) (color.RGBA, bool) {
	var digits int
	switch len(s) {
	case 3:
		digits = 1
	case 6:
		digits = 2
	default:
		return color.RGBA{}, false
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(s[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		if digits == 1 {
			v *= 0x11
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, true
}
