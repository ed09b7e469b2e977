package spectshow

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/neurlang/spectshow/internal/testutil"
)

func TestLoadWaveform(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
	}{
		{"one second sine", 8000, 1, testutil.Sine(440, 8000, 10000, 8000)},
		{"short ramp", 16000, 1, testutil.Ramp(-5, 11)},
		{"stereo stays interleaved", 8000, 2, testutil.Ramp(100, 20)},
		{"empty data chunk", 8000, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.wav")
			if err := testutil.WriteWav(path, tt.rate, tt.channels, tt.samples); err != nil {
				t.Fatal(err)
			}

			w, err := LoadWaveform(path)
			if err != nil {
				t.Fatalf("LoadWaveform() error = %v", err)
			}
			if w.SampleRate != tt.rate {
				t.Errorf("SampleRate = %d, want %d", w.SampleRate, tt.rate)
			}
			if w.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", w.Channels, tt.channels)
			}
			if len(w.Samples) != len(tt.samples) {
				t.Fatalf("len(Samples) = %d, want %d", len(w.Samples), len(tt.samples))
			}
			if w.Frames() != len(tt.samples)/tt.channels {
				t.Errorf("Frames() = %d, want %d", w.Frames(), len(tt.samples)/tt.channels)
			}
			for i := range tt.samples {
				if w.Samples[i] != tt.samples[i] {
					t.Fatalf("Samples[%d] = %d, want %d", i, w.Samples[i], tt.samples[i])
				}
			}
		})
	}
}

func TestWaveformTimeAxis(t *testing.T) {
	w := &Waveform{SampleRate: 8000, Channels: 1, Samples: make([]int16, 8000)}
	if got := w.Time(4000); got != 0.5 {
		t.Errorf("Time(4000) = %v, want 0.5", got)
	}
	if got := w.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}
}

func TestDecodeWaveformRejects(t *testing.T) {
	good := testutil.LE16(testutil.Ramp(0, 50))

	notRiff := testutil.PCM16(8000, 50)
	notRiff.RiffTag = "RIFX"
	notWave := testutil.PCM16(8000, 50)
	notWave.WaveTag = "AVI "
	float := testutil.PCM16(8000, 50)
	float.Format = 3
	eight := testutil.PCM16(8000, 50)
	eight.Bits = 8
	noRate := testutil.PCM16(0, 50)
	noFmt := testutil.PCM16(8000, 50)
	noFmt.OmitFormat = true
	long := testutil.PCM16(8000, 100)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"too short", []byte("RIFF"), ErrNotWave},
		{"not riff", testutil.RawWav(notRiff, good), ErrNotWave},
		{"not wave", testutil.RawWav(notWave, good), ErrNotWave},
		{"missing fmt chunk", testutil.RawWav(noFmt, good), ErrNotWave},
		{"ieee float", testutil.RawWav(float, good), ErrNotPCM},
		{"8 bit", testutil.RawWav(eight, good), ErrBitDepth},
		{"zero sample rate", testutil.RawWav(noRate, good), ErrSampleRate},
		{"truncated data", testutil.RawWav(long, good), ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWaveform(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeWaveform() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeWaveformRaw(t *testing.T) {
	samples := testutil.Ramp(-3, 7)
	data := testutil.RawWav(testutil.PCM16(11025, len(samples)), testutil.LE16(samples))

	w, err := DecodeWaveform(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeWaveform() error = %v", err)
	}
	if w.SampleRate != 11025 || len(w.Samples) != len(samples) {
		t.Fatalf("got rate %d and %d samples, want 11025 and %d", w.SampleRate, len(w.Samples), len(samples))
	}
	for i := range samples {
		if w.Samples[i] != samples[i] {
			t.Errorf("Samples[%d] = %d, want %d", i, w.Samples[i], samples[i])
		}
	}
}

func TestLoadWaveformErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWaveform(filepath.Join(dir, "missing.wav"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LoadError", err)
	}
	if le.Kind != KindAudio {
		t.Errorf("Kind = %q, want %q", le.Kind, KindAudio)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("this is not audio at all"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadWaveform(garbage)
	if !errors.As(err, &le) || !errors.Is(err, ErrNotWave) {
		t.Errorf("error = %v, want *LoadError wrapping ErrNotWave", err)
	}
}
