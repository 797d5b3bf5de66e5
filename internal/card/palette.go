package card

import "fmt"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// ParseHexRGB parses "#rrggbb" or "rrggbb".
func ParseHexRGB(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("parse colour %q: want 6 hex digits", s)
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v[i] = c - '0'
		case c >= 'a' && c <= 'f':
			v[i] = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v[i] = c - 'A' + 10
		default:
			return RGB{}, fmt.Errorf("parse colour %q: bad digit %q", s, c)
		}
	}
	return RGB{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}, nil
}

// DefaultHearts is the celebration palette: five reds/pinks, matching
// the classic valentine look.
var DefaultHearts = [5]RGB{
	{R: 255, G: 77, B: 109},
	{R: 255, G: 117, B: 143},
	{R: 255, G: 143, B: 163},
	{R: 251, G: 177, B: 189},
	{R: 249, G: 190, B: 199},
}

var Palette = struct {
	Backdrop     RGB
	Envelope     RGB
	EnvelopeFlap RGB
	EnvelopeLine RGB
	Card         RGB
	CardEdge     RGB
	Note         RGB
	NoteShadow   RGB
	Ink          RGB
	InkSoft      RGB
	Yes          RGB
	YesHover     RGB
	No           RGB
	ButtonText   RGB
	Glow         RGB
}{
	Backdrop:     RGB{R: 255, G: 228, B: 235},
	Envelope:     RGB{R: 233, G: 84, B: 107},
	EnvelopeFlap: RGB{R: 209, G: 62, B: 87},
	EnvelopeLine: RGB{R: 178, G: 48, B: 71},
	Card:         RGB{R: 255, G: 250, B: 246},
	CardEdge:     RGB{R: 240, G: 214, B: 220},
	Note:         RGB{R: 255, G: 241, B: 168},
	NoteShadow:   RGB{R: 120, G: 104, B: 60},
	Ink:          RGB{R: 74, G: 48, B: 60},
	InkSoft:      RGB{R: 148, G: 116, B: 128},
	Yes:          RGB{R: 233, G: 84, B: 107},
	YesHover:     RGB{R: 247, G: 110, B: 131},
	No:           RGB{R: 168, G: 168, B: 178},
	ButtonText:   RGB{R: 255, G: 252, B: 250},
	Glow:         RGB{R: 255, G: 170, B: 190},
}
