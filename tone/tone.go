package tone

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/neurlang/spectshow/internal/fsutil"
)

// Shape is a periodic waveform.
type Shape int

const (
	Sine Shape = iota
	Sawtooth
	Square
	Triangle
)

// Shapes lists every waveform in generation order.
var Shapes = []Shape{Sine, Sawtooth, Square, Triangle}

var ErrShape = errors.New("unknown wave shape")

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Sawtooth:
		return "sawtooth"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a shape name back to a Shape.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrShape, name)
}

// At returns the value in [-1, 1] of the shape at time t for frequency f.
func (s Shape) At(f, t float64) float64 {
	switch s {
	case Sine:
		return math.Sin(2 * math.Pi * f * t)
	case Sawtooth:
		return f*t - math.Floor(f*t+0.5)
	case Square:
		if math.Sin(2*math.Pi*f*t) > 0 {
			return 1
		}
		return -1
	case Triangle:
		return 2*math.Abs(2*(f*t-math.Floor(f*t+0.5))) - 1
	}
	return 0
}

// maxLevel keeps samples symmetric around zero.
const maxLevel = math.MaxInt16

// Tone represents the configuration of a generated test signal.
type Tone struct {
	Shape      Shape
	Frequency  float64
	Amplitude  float64
	SampleRate int
	Duration   time.Duration

	// Gate silences the signal from this time on. Zero keeps it running
	// for the whole duration.
	Gate time.Duration
}

// NewTone creates a new Tone with default values.
func NewTone() *Tone {
	return &Tone{
		Shape:      Sine,
		Frequency:  440,
		Amplitude:  1000,
		SampleRate: 8000,
		Duration:   100 * time.Millisecond,
		Gate:       100 * time.Millisecond,
	}
}

// Frames returns the number of samples in the tone. The duration is
// counted in whole milliseconds.
func (t *Tone) Frames() int {
	return int(int64(t.SampleRate) * t.Duration.Milliseconds() / 1000)
}

// Sample returns sample n, truncated toward zero.
func (t *Tone) Sample(n int) int16 {
	at := float64(n) / float64(t.SampleRate)
	if t.Gate > 0 && at >= t.Gate.Seconds() {
		return 0
	}
	v := t.Amplitude * t.Shape.At(t.Frequency, at)
	v = math.Max(-maxLevel, math.Min(maxLevel, v))
	return int16(v)
}

// Samples returns every sample of the tone.
func (t *Tone) Samples() []int16 {
	out := make([]int16, t.Frames())
	for n := range out {
		out[n] = t.Sample(n)
	}
	return out
}

// Format is the 16-bit mono format the tone is encoded with.
func (t *Tone) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(t.SampleRate),
		NumChannels: 1,
		Precision:   2,
	}
}

// Streamer plays the tone once.
func (t *Tone) Streamer() beep.Streamer {
	samples := t.Samples()
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (n int, ok bool) {
		if pos >= len(samples) {
			return 0, false
		}
		for n < len(buf) && pos < len(samples) {
			x := level(samples[pos])
			buf[n][0], buf[n][1] = x, x
			n++
			pos++
		}
		return n, true
	})
}

// level maps s to a float half a step away from zero, so truncating
// 16-bit encoders reproduce s exactly.
func level(s int16) float64 {
	switch {
	case s > 0:
		return (float64(s) + 0.5) / maxLevel
	case s < 0:
		return (float64(s) - 0.5) / maxLevel
	}
	return 0
}

// Save encodes the tone as a 16-bit mono WAV file.
func (t *Tone) Save(path string) error {
	if t.SampleRate <= 0 {
		return fmt.Errorf("tone: invalid sample rate %d", t.SampleRate)
	}
	return fsutil.WriteAtomic(path, func(f *os.File) error {
		return wav.Encode(f, t.Streamer(), t.Format())
	})
}

// Name returns the file name the tone is saved under, for example
// wave_8k_sine_f440_a1000.wav.
func (t *Tone) Name() string {
	return fmt.Sprintf("wave_%dk_%s_f%.0f_a%.0f.wav",
		t.SampleRate/1000, t.Shape, t.Frequency, t.Amplitude)
}

// Rates are the sample rates of the test grid.
var Rates = []int{8000, 16000}

// Pairs are the frequency and amplitude combinations of the test grid.
var Pairs = [][2]float64{
	{0, 100}, {31.25, 2000}, {500, 1000}, {2000, 500}, {4000, 250},
	{44, 100}, {220, 2000}, {440, 1000}, {1760, 500}, {3960, 250},
}

// Grid returns every combination of rate, shape and frequency/amplitude
// pair, in that nesting order.
func Grid(duration, gate time.Duration) []*Tone {
	var out []*Tone
	for _, rate := range Rates {
		for _, shape := range Shapes {
			for _, p := range Pairs {
				out = append(out, &Tone{
					Shape:      shape,
					Frequency:  p[0],
					Amplitude:  p[1],
					SampleRate: rate,
					Duration:   duration,
					Gate:       gate,
				})
			}
		}
	}
	return out
}
