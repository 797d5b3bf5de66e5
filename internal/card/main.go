package card

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and drives the interaction loop until the
// user closes it.
func RunDesktop(cfg Config) {
	runtime.LockOSThread()

	window, err := initWindow(&cfg)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("HEARTFALL_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Backdrop.R)/255.0,
		float32(Palette.Backdrop.G)/255.0,
		float32(Palette.Backdrop.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Systems.
	sched := NewLoopScheduler()
	hearts := NewHeartSystem(MaxHearts, seed^0xBEAD, cfg.HeartPalette())
	cele := NewCelebration(hearts, sched, rend, seed, cfg.Campaign)
	defer cele.Stop()

	bus := NewEventBus()
	if cfg.Audio {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			bus.Subscribe(EventEnvelopeOpened, func(Event) { PlaySound(SoundOpen) })
			bus.Subscribe(EventNoteDismissed, func(Event) { PlaySound(SoundPop) })
			bus.Subscribe(EventButtonEvaded, func(Event) { PlaySound(SoundEvade) })
			bus.Subscribe(EventCelebrationStarted, func(Event) { PlaySound(SoundFanfare) })
		}
	}

	scene := NewScene(&cfg)
	seq := NewSequencer(&cfg, scene, cele, sched, bus, seed)
	input := NewInput()

	// Tab-hidden equivalent: stop ticking while iconified, resume after.
	window.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			cele.Pause()
		} else {
			cele.Resume()
		}
	})

	for !window.ShouldClose() {
		now := glfw.GetTime()

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		scene.SetViewport(float64(fbW), float64(fbH))

		mx, my := CursorPos(window, fbW, fbH)
		pressed, released := input.ButtonEdge(window, glfw.MouseButtonLeft)
		seq.PointerMoved(mx, my)
		if pressed {
			seq.Press(mx, my)
		}
		if released {
			seq.Release(mx, my)
		}
		seq.Update()

		rend.BeginFrame(fbW, fbH)
		RenderScene(rend, scene, seq, &cfg, now)
		// Timers fire pending bursts, then the celebration tick updates
		// and draws the hearts over the scene.
		sched.Run(now)
		rend.FlushText()
		window.SwapBuffers()
	}
}
