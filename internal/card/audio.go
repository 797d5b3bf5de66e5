package card

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundOpen SoundKind = iota
	SoundPop
	SoundEvade
	SoundFanfare
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.8

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. No-ops when the
// audio system never came up.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// soundReader streams float32 stereo samples as little-endian bytes.
type soundReader struct {
	data []float32
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := 0
	for r.pos < len(r.data) && n+4 <= len(p) {
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(r.data[r.pos]))
		r.pos++
		n += 4
	}
	return n, nil
}

func generateSound(kind SoundKind) []float32 {
	switch kind {
	case SoundOpen:
		return genChime([]float64{523.25, 659.25}, 0.45)
	case SoundPop:
		return genPop()
	case SoundEvade:
		return genBlip()
	case SoundFanfare:
		return genChime([]float64{523.25, 659.25, 783.99, 1046.50}, 0.9)
	}
	return nil
}

// genChime plays the given notes as a quick overlapping arpeggio with
// exponential decay and a soft second harmonic.
func genChime(notes []float64, dur float64) []float32 {
	total := int(dur * SampleRate)
	out := make([]float32, total*ChannelCount)
	step := dur / float64(len(notes)+1)

	for ni, freq := range notes {
		start := int(float64(ni) * step * SampleRate)
		for i := start; i < total; i++ {
			t := float64(i-start) / SampleRate
			env := math.Exp(-4.5 * t)
			v := (math.Sin(2*math.Pi*freq*t) + 0.35*math.Sin(4*math.Pi*freq*t)) * env * 0.22
			out[i*2] += float32(v)
			out[i*2+1] += float32(v)
		}
	}
	return out
}

// genPop is a short filtered noise burst for a dismissed note.
func genPop() []float32 {
	dur := 0.12
	total := int(dur * SampleRate)
	out := make([]float32, total*ChannelCount)
	r := NewRand(0x909)
	prev := 0.0
	for i := 0; i < total; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-32 * t)
		// One-pole lowpass over white noise keeps the pop soft.
		prev = prev*0.6 + r.RangeF(-1, 1)*0.4
		v := prev * env * 0.5
		out[i*2] = float32(v)
		out[i*2+1] = float32(v)
	}
	return out
}

// genBlip is the No button's dodge: a quick rising sine sweep.
func genBlip() []float32 {
	dur := 0.09
	total := int(dur * SampleRate)
	out := make([]float32, total*ChannelCount)
	for i := 0; i < total; i++ {
		t := float64(i) / SampleRate
		freq := 700 + 1400*(t/dur)
		env := math.Exp(-18 * t)
		v := math.Sin(2*math.Pi*freq*t) * env * 0.3
		out[i*2] = float32(v)
		out[i*2+1] = float32(v)
	}
	return out
}
