package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Cue timings
const (
	placeDuration = 40 * time.Millisecond
	placeAttack   = 2 * time.Millisecond
	placeRelease  = 30 * time.Millisecond

	chimeNoteDuration = 120 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 80 * time.Millisecond

	drawDuration = 200 * time.Millisecond
	drawAttack   = 10 * time.Millisecond
	drawRelease  = 150 * time.Millisecond
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope spanning duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain. Zero or negative gain is silent since
// log2(0) is -Inf.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// withVolume applies a base-2 exponent volume, 0 meaning unchanged
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// NewPlaceSound is a short square click for a placed mark
func NewPlaceSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(660, placeDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, placeDuration, placeAttack, placeRelease, rate)
	return withVolume(newVolume(shaped, 0.3), volume)
}

// NewWinSound is a rising three-note chime
func NewWinSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := []float64{659.25, 830.61, 987.77} // E5 G#5 B5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, chimeNoteDuration, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, chimeNoteDuration, chimeAttack, chimeRelease, rate))
	}
	return withVolume(newVolume(beep.Seq(seq...), 0.6), volume)
}

// NewDrawSound is a low falling two-note tone
func NewDrawSound(rate beep.SampleRate, volume float64) beep.Streamer {
	high := NewEnvelope(NewOscillator(220, drawDuration, WaveSaw, rate), drawDuration, drawAttack, drawRelease, rate)
	low := NewEnvelope(NewOscillator(164.81, drawDuration, WaveSaw, rate), drawDuration, drawAttack, drawRelease, rate)
	return withVolume(newVolume(beep.Seq(high, low), 0.25), volume)
}
