package card

import "math"

// RenderScene draws the card for the current sequence phase. Hearts are
// drawn separately by the celebration tick; text is queued here and
// flushed by the caller at the end of the frame.
func RenderScene(rend *Renderer, scene *Scene, seq *Sequencer, cfg *Config, now float64) {
	switch seq.State {
	case StateEnvelope:
		renderEnvelope(rend, scene, now)
	case StateNotes:
		renderCard(rend, scene, cfg, false, seq)
		renderNotes(rend, scene)
	case StateQuestion:
		renderCard(rend, scene, cfg, true, seq)
	case StateCelebrating:
		renderCard(rend, scene, cfg, false, seq)
	case StateDone:
		renderClosing(rend, scene, cfg)
	}
}

func renderEnvelope(rend *Renderer, scene *Scene, now float64) {
	env := scene.EnvelopeRect()

	// Soft pulsing glow behind the envelope.
	pulse := 0.75 + 0.25*math.Sin(now*2.4)
	g := Palette.Glow.Mul(uint8(89 * pulse))
	glow := []float32{
		float32(env.CenterX()), float32(env.CenterY()), float32(env.W() * 1.6),
		float32(g.R) / 255.0, float32(g.G) / 255.0, float32(g.B) / 255.0,
		1, 0,
	}
	rend.DrawGlow(glow)

	rend.DrawQuad(env, Palette.Envelope, 1)

	// Flap: two slabs meeting at the centre, a cheap V silhouette.
	flapH := env.H() * 0.46
	left := RectF{X0: env.X0, Y0: env.Y0, X1: env.CenterX() + 2, Y1: env.Y0 + flapH}
	right := RectF{X0: env.CenterX() - 2, Y0: env.Y0, X1: env.X1, Y1: env.Y0 + flapH}
	// A touch of light on the left flap so the V reads as folded paper.
	rend.DrawQuad(left, Palette.EnvelopeFlap.Add(10, 8, 8), 1)
	rend.DrawQuad(right, Palette.EnvelopeFlap, 1)
	seam := RectF{X0: env.X0, Y0: env.Y0 + flapH - 2, X1: env.X1, Y1: env.Y0 + flapH + 2}
	rend.DrawQuad(seam, Palette.EnvelopeLine, 1)

	drawCentered(rend, "CLICK TO OPEN", env.CenterX(), env.Y1+24, 2, Palette.Ink)
}

func renderCard(rend *Renderer, scene *Scene, cfg *Config, question bool, seq *Sequencer) {
	cardBox := scene.CardRect()
	rend.DrawQuad(cardBox.Expand(4), Palette.CardEdge, 1)
	rend.DrawQuad(cardBox, Palette.Card, 1)

	// Message lines centred in the card's upper half.
	y := cardBox.Y0 + cardBox.H()*0.18
	for _, line := range cfg.Message {
		drawCentered(rend, line, cardBox.CenterX(), y, 2, Palette.Ink)
		y += FontCellH*2 + 10
	}

	if !question {
		return
	}

	drawCentered(rend, cfg.Prompt, cardBox.CenterX(), cardBox.CenterY(), 3, Palette.Ink)

	yes := scene.YesRect()
	yesCol := Palette.Yes
	if yes.ContainsPoint(seq.lastX, seq.lastY) {
		yesCol = Palette.YesHover
	}
	rend.DrawQuad(yes, yesCol, 1)
	drawCentered(rend, cfg.Yes, yes.CenterX(), yes.CenterY()-FontCellH, 2, Palette.ButtonText)

	no := scene.NoRect()
	noScale := float32(scene.NoScale())
	// The button washes out as it shrinks.
	noCol := lerpRGB(Palette.No, Palette.CardEdge, 1-scene.NoScale())
	rend.DrawQuad(no, noCol, 1)
	drawCentered(rend, cfg.No, no.CenterX(), no.CenterY()-float64(FontCellH)*float64(noScale), 2*noScale, Palette.ButtonText)

	// Attempt feedback under the prompt once the chase has started.
	if seq.NoAttempts >= 3 {
		drawCentered(rend, "IT'S SHY. TRY THE OTHER ONE!", cardBox.CenterX(), cardBox.CenterY()+FontCellH*3+8, 1, Palette.InkSoft)
	}
}

func renderNotes(rend *Renderer, scene *Scene) {
	for i := range scene.Notes {
		n := &scene.Notes[i]
		if n.Dismissed {
			continue
		}
		box := scene.NoteRect(i)
		rend.DrawQuad(box.Translate(5, 6), Palette.NoteShadow, 0.35)
		rend.DrawQuad(box, Palette.Note, 1)
		drawCentered(rend, n.Label, box.CenterX(), box.CenterY()-FontCellH*0.5, 1, Palette.Ink)
	}
}

func renderClosing(rend *Renderer, scene *Scene, cfg *Config) {
	cardBox := scene.CardRect()
	rend.DrawQuad(cardBox.Expand(4), Palette.CardEdge, 1)
	rend.DrawQuad(cardBox, Palette.Card, 1)
	drawCentered(rend, cfg.Closing, cardBox.CenterX(), cardBox.CenterY()-FontCellH, 3, Palette.Ink)
}

// drawCentered queues text horizontally centred on cx at baseline y.
func drawCentered(rend *Renderer, text string, cx, y float64, scale float32, col RGB) {
	w := TextWidth(text, scale)
	rend.DrawString(text, int(cx)-w/2, int(y), scale, col)
}
