package card

import "math"

// Note is one draggable sticky overlay covering the card message.
type Note struct {
	Label string

	// Anchor is the resting position; Offset accumulates drag movement.
	AnchorX, AnchorY float64
	OffsetX, OffsetY float64

	Dragging       bool
	GrabDX, GrabDY float64
	Dismissed      bool
}

// Scene owns the card layout in framebuffer pixels. Every rect is
// derived from the live framebuffer size at query time; nothing layout
// dependent is cached across frames.
type Scene struct {
	fbW, fbH float64

	Notes []Note

	// No button presentation state. Until the first evasion the button
	// sits in its layout slot.
	noX, noY float64
	noScale  float64
	noPlaced bool
}

func NewScene(cfg *Config) *Scene {
	s := &Scene{
		fbW:     float64(cfg.Width),
		fbH:     float64(cfg.Height),
		noScale: 1,
	}
	for i, label := range cfg.Notes {
		s.Notes = append(s.Notes, Note{Label: label, AnchorX: float64(i), AnchorY: float64(i)})
	}
	return s
}

// SetViewport records the current framebuffer size. Called every frame
// before any layout query.
func (s *Scene) SetViewport(w, h float64) {
	if w > 0 && h > 0 {
		s.fbW = w
		s.fbH = h
	}
}

func (s *Scene) Viewport() (float64, float64) { return s.fbW, s.fbH }

// EnvelopeRect is the closed envelope, centred.
func (s *Scene) EnvelopeRect() RectF {
	w := clampF(s.fbW*0.42, 220, 420)
	h := w * 0.62
	return RectFromSize((s.fbW-w)*0.5, (s.fbH-h)*0.5, w, h)
}

// CardRect is the open card: the planner's container.
func (s *Scene) CardRect() RectF {
	m := clampF(s.fbW*0.08, 24, 90)
	return RectF{X0: m, Y0: m * 0.8, X1: s.fbW - m, Y1: s.fbH - m*0.8}
}

// NoteRect returns the note's current box, anchored over the card
// message and offset by its drag displacement.
func (s *Scene) NoteRect(i int) RectF {
	card := s.CardRect()
	n := &s.Notes[i]
	// Stagger resting spots slightly so stacked notes peek out.
	ax := card.CenterX() - NoteWidth*0.5 + n.AnchorX*18
	ay := card.CenterY() - NoteHeight*0.62 + n.AnchorY*14
	return RectFromSize(ax+n.OffsetX, ay+n.OffsetY, NoteWidth, NoteHeight)
}

// NoteDragDistance is how far the note has been pulled from its anchor.
func (s *Scene) NoteDragDistance(i int) float64 {
	n := &s.Notes[i]
	return math.Hypot(n.OffsetX, n.OffsetY)
}

// TopNoteAt returns the topmost live note containing the point, or -1.
func (s *Scene) TopNoteAt(x, y float64) int {
	for i := len(s.Notes) - 1; i >= 0; i-- {
		if s.Notes[i].Dismissed {
			continue
		}
		if s.NoteRect(i).ContainsPoint(x, y) {
			return i
		}
	}
	return -1
}

// NotesLeft counts notes not yet dismissed.
func (s *Scene) NotesLeft() int {
	left := 0
	for i := range s.Notes {
		if !s.Notes[i].Dismissed {
			left++
		}
	}
	return left
}

// YesRect is the affirmative button, left of the card's lower middle.
func (s *Scene) YesRect() RectF {
	card := s.CardRect()
	y := card.Y1 - DefaultTargetH - 36
	return RectFromSize(card.CenterX()-DefaultTargetW-18, y, DefaultTargetW, DefaultTargetH)
}

// NoRect is the evasive button's current box. Before any evasion it
// mirrors the Yes button on the right; afterwards it sits wherever the
// planner put it, scaled by the shrink factor.
func (s *Scene) NoRect() RectF {
	w := DefaultTargetW * s.noScale
	h := DefaultTargetH * s.noScale
	if !s.noPlaced {
		card := s.CardRect()
		y := card.Y1 - DefaultTargetH - 36
		return RectFromSize(card.CenterX()+18, y, w, h)
	}
	return RectFromSize(s.noX, s.noY, w, h)
}

// PlaceNo pins the No button's top-left corner.
func (s *Scene) PlaceNo(x, y float64) {
	s.noX = x
	s.noY = y
	s.noPlaced = true
}

// CenterNo pins the No button centred on a point (degenerate placement).
func (s *Scene) CenterNo(cx, cy float64) {
	r := s.NoRect()
	s.PlaceNo(cx-r.W()*0.5, cy-r.H()*0.5)
}

func (s *Scene) SetNoScale(scale float64) {
	s.noScale = clampF(scale, 0.1, 1)
}

func (s *Scene) NoScale() float64 { return s.noScale }
