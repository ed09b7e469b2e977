package spectshow

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by LoadError.
var (
	ErrNotWave    = errors.New("not a RIFF/WAVE file")
	ErrNotPCM     = errors.New("not linear PCM")
	ErrBitDepth   = errors.New("unsupported bit depth")
	ErrSampleRate = errors.New("invalid sample rate")
	ErrNoData     = errors.New("no data chunk")
	ErrTruncated  = errors.New("truncated data chunk")

	ErrEmpty     = errors.New("empty spectrogram")
	ErrJagged    = errors.New("rows differ in length")
	ErrNotNumber = errors.New("not a number")
)

// Input kinds reported by LoadError.
const (
	KindAudio       = "audio"
	KindSpectrogram = "spectrogram"
)

// UsageError reports a command invoked with the wrong number of arguments.
type UsageError struct {
	Want, Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// LoadError reports a missing, unreadable or malformed input file.
type LoadError struct {
	Kind string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// RenderError reports a failure while composing or writing the output page.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
