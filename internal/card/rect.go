package card

// RectF is an axis-aligned rectangle in framebuffer-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func RectFromSize(x, y, w, h float64) RectF {
	return RectF{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r RectF) W() float64 { return r.X1 - r.X0 }
func (r RectF) H() float64 { return r.Y1 - r.Y0 }

func (r RectF) CenterX() float64 { return (r.X0 + r.X1) * 0.5 }
func (r RectF) CenterY() float64 { return (r.Y0 + r.Y1) * 0.5 }

// Intersects reports strict overlap on both axes; touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Inset shrinks the rectangle by m on all sides (negative m expands).
func (r RectF) Inset(m float64) RectF {
	return RectF{X0: r.X0 + m, Y0: r.Y0 + m, X1: r.X1 - m, Y1: r.Y1 - m}
}

// Expand grows the rectangle by m on all sides.
func (r RectF) Expand(m float64) RectF {
	return r.Inset(-m)
}

func (r RectF) Translate(dx, dy float64) RectF {
	return RectF{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Empty reports zero or negative extent on either axis.
func (r RectF) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}
