package card

// CardState is the interaction sequence phase.
type CardState int

const (
	StateEnvelope CardState = iota // closed envelope, waiting for a click
	StateNotes                     // card shown, sticky notes to drag away
	StateQuestion                  // yes/no prompt, No evades
	StateCelebrating               // hearts falling
	StateDone                      // campaign over, closing message
)

// Sequencer drives the card from envelope to celebration. It owns the
// evasion guard and the No-click counter; the planner itself stays a
// pure function fed with live scene measurements.
type Sequencer struct {
	State CardState

	cfg   *Config
	scene *Scene
	cele  *Celebration
	clock Clock
	bus   *EventBus
	rng   *Rand

	guard      EvasionGuard
	NoAttempts int

	dragNote     int
	lastX, lastY float64
}

func NewSequencer(cfg *Config, scene *Scene, cele *Celebration, clock Clock, bus *EventBus, seed uint64) *Sequencer {
	return &Sequencer{
		State:    StateEnvelope,
		cfg:      cfg,
		scene:    scene,
		cele:     cele,
		clock:    clock,
		bus:      bus,
		rng:      NewRand(splitmix64(seed ^ 0xE5CA9E)),
		guard:    EvasionGuard{Cooldown: cfg.Evasion.Cooldown},
		dragNote: -1,
	}
}

// PointerMoved handles hover evasion and note dragging.
func (q *Sequencer) PointerMoved(x, y float64) {
	dx, dy := x-q.lastX, y-q.lastY
	q.lastX, q.lastY = x, y

	switch q.State {
	case StateNotes:
		if q.dragNote >= 0 {
			n := &q.scene.Notes[q.dragNote]
			n.OffsetX += dx
			n.OffsetY += dy
		}
	case StateQuestion:
		if *q.cfg.Evasion.HoverEvasion && q.scene.NoRect().Expand(HoverMargin).ContainsPoint(x, y) {
			q.evade()
		}
	}
}

// Press handles a pointer-down at (x, y).
func (q *Sequencer) Press(x, y float64) {
	q.lastX, q.lastY = x, y

	switch q.State {
	case StateEnvelope:
		if q.scene.EnvelopeRect().ContainsPoint(x, y) {
			q.openEnvelope()
		}

	case StateNotes:
		if i := q.scene.TopNoteAt(x, y); i >= 0 {
			q.dragNote = i
			q.scene.Notes[i].Dragging = true
		}

	case StateQuestion:
		if q.scene.YesRect().ContainsPoint(x, y) {
			q.celebrate()
			return
		}
		if q.scene.NoRect().ContainsPoint(x, y) {
			// The counter grows on every attempt even when the guard
			// swallows the jump, so the shrink keeps progressing.
			q.NoAttempts++
			q.scene.SetNoScale(EvadeScale(q.NoAttempts))
			q.evade()
		}
	}
}

// Release handles pointer-up: note drop or dismissal.
func (q *Sequencer) Release(x, y float64) {
	if q.State != StateNotes || q.dragNote < 0 {
		return
	}
	i := q.dragNote
	q.dragNote = -1
	n := &q.scene.Notes[i]
	n.Dragging = false

	if q.scene.NoteDragDistance(i) >= NoteDismissAt {
		n.Dismissed = true
		q.bus.Emit(Event{Type: EventNoteDismissed, X: x, Y: y, Data: q.scene.NotesLeft()})
		if q.scene.NotesLeft() == 0 {
			q.State = StateQuestion
		}
		return
	}
	// Not far enough: snap back.
	n.OffsetX = 0
	n.OffsetY = 0
}

// Update settles the terminal transition once the hearts are gone.
func (q *Sequencer) Update() {
	if q.State == StateCelebrating && !q.cele.Active() {
		q.State = StateDone
		q.bus.Emit(Event{Type: EventCelebrationEnded})
	}
}

func (q *Sequencer) openEnvelope() {
	if q.scene.NotesLeft() > 0 {
		q.State = StateNotes
	} else {
		q.State = StateQuestion
	}
	q.bus.Emit(Event{Type: EventEnvelopeOpened})
}

func (q *Sequencer) celebrate() {
	yes := q.scene.YesRect()
	q.State = StateCelebrating
	w, h := q.scene.Viewport()
	q.cele.SetArea(w, h)
	q.cele.Start(yes.CenterX(), yes.CenterY())
	q.bus.Emit(Event{Type: EventCelebrationStarted, X: yes.CenterX(), Y: yes.CenterY()})
}

// evade replans the No button position through the reentrancy guard.
// Measurements are taken fresh from the scene; the planner never sees
// stale layout.
func (q *Sequencer) evade() {
	now := q.clock.Now()
	if !q.guard.TryBegin(now) {
		return
	}
	card := q.scene.CardRect()
	no := q.scene.NoRect()
	e := &q.cfg.Evasion
	x, y, searched := PlanPlacement(card, no.W(), no.H(), no, e.Padding, e.Buffer, e.Attempts, q.rng)
	if searched {
		q.scene.PlaceNo(x, y)
	} else {
		q.scene.CenterNo(x, y)
	}
	q.guard.Finish(now)
	q.bus.Emit(Event{Type: EventButtonEvaded, X: x, Y: y, Data: q.NoAttempts})
}
