package spectshow

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/wav"
)

const (
	formatPCM   = 1
	bitDepth    = 16
	sampleBytes = bitDepth / 8
)

// Waveform holds the decoded samples of a 16-bit PCM file.
// Samples are interleaved when Channels > 1.
type Waveform struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// Frames returns the number of frames, one sample per channel each.
func (w *Waveform) Frames() int {
	if w.Channels == 0 {
		return 0
	}
	return len(w.Samples) / w.Channels
}

// Time returns the position in seconds of sample i of the flat sample slice.
func (w *Waveform) Time(i int) float64 {
	return float64(i) / float64(w.SampleRate)
}

// Duration returns the playing time of the waveform.
func (w *Waveform) Duration() time.Duration {
	return time.Duration(w.Frames()) * time.Second / time.Duration(w.SampleRate)
}

// LoadWaveform reads a 16-bit linear PCM WAV file.
func LoadWaveform(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindAudio, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Kind: KindAudio, Path: path, Err: err}
	}

	w, err := DecodeWaveform(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Kind: KindAudio, Path: path, Err: err}
	}
	return w, nil
}

// DecodeWaveform decodes a WAV container from r. The returned error wraps one
// of ErrNotWave, ErrNotPCM, ErrBitDepth, ErrSampleRate, ErrNoData or
// ErrTruncated.
func DecodeWaveform(r io.ReadSeeker) (*Waveform, error) {
	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWave, err)
	}
	if string(magic[0:4]) != "RIFF" || string(magic[8:12]) != "WAVE" {
		return nil, ErrNotWave
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	d := wav.NewDecoder(r)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWave, err)
	}
	if d.NumChans == 0 {
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrNotWave)
	}
	if d.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, d.WavAudioFormat)
	}
	if d.BitDepth != bitDepth {
		return nil, fmt.Errorf("%w: %d bits", ErrBitDepth, d.BitDepth)
	}
	if d.SampleRate == 0 {
		return nil, ErrSampleRate
	}
	if err := d.FwdToPCM(); err != nil || d.PCMChunk == nil {
		return nil, ErrNoData
	}

	channels := int(d.NumChans)
	frames := d.PCMSize / (channels * sampleBytes)
	want := frames * channels

	avail, err := remaining(r)
	if err != nil {
		return nil, err
	}
	if avail < int64(want*sampleBytes) {
		return nil, fmt.Errorf("%w: header declares %d frames, found %d bytes of audio",
			ErrTruncated, frames, avail)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if len(buf.Data) < want {
		return nil, fmt.Errorf("%w: header declares %d frames, found %d",
			ErrTruncated, frames, len(buf.Data)/channels)
	}

	samples := make([]int16, want)
	for i := range samples {
		samples[i] = int16(buf.Data[i])
	}

	return &Waveform{
		SampleRate: int(d.SampleRate),
		Channels:   channels,
		Samples:    samples,
	}, nil
}

// remaining reports the bytes left after the current offset of r
// and leaves the offset where it was.
func remaining(r io.Seeker) (int64, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end - pos, nil
}
