package cascade

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"

	"github.com/neurlang/spectshow/internal/fsutil"
)

var (
	ErrNoInput  = errors.New("no usable input file")
	ErrFormat   = errors.New("incompatible format")
	ErrNotPCM   = errors.New("not a PCM WAV file")
	ErrBitDepth = errors.New("unsupported bit depth")
)

// Format is the sample layout shared by all merged files.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d bit", f.SampleRate, f.Channels, f.BitDepth)
}

func (f Format) check() error {
	switch f.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrBitDepth, f.BitDepth)
	}
	if f.Channels < 1 || f.SampleRate <= 0 {
		return fmt.Errorf("%w: %v", ErrNotPCM, f)
	}
	return nil
}

// Skip records an input left out of the merge.
type Skip struct {
	Path string
	Err  error
}

// Report describes the result of a merge.
type Report struct {
	Format  Format
	Merged  []string
	Skipped []Skip
	Frames  int
}

// Merge concatenates the audio of inputs into a WAV file at output. The
// first readable input fixes the format; later inputs that cannot be read
// or differ in format are skipped, logged and listed in the report.
func Merge(inputs []string, output string) (*Report, error) {
	var rep = &Report{}
	var data []int

	for _, path := range inputs {
		buf, f, err := Load(path)
		if err == nil && len(rep.Merged) > 0 && f != rep.Format {
			err = fmt.Errorf("%w: %v, want %v", ErrFormat, f, rep.Format)
		}
		if err != nil {
			log.Printf("cascade: skipping %s: %v", path, err)
			rep.Skipped = append(rep.Skipped, Skip{Path: path, Err: err})
			continue
		}
		if len(rep.Merged) == 0 {
			rep.Format = f
		}
		rep.Merged = append(rep.Merged, path)
		data = append(data, buf.Data...)
	}
	if len(rep.Merged) == 0 {
		return rep, ErrNoInput
	}
	rep.Frames = len(data) / rep.Format.Channels

	out := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: rep.Format.Channels,
			SampleRate:  rep.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: rep.Format.BitDepth,
	}
	err := fsutil.WriteAtomic(output, func(f *os.File) error {
		enc := wav.NewEncoder(f, rep.Format.SampleRate, rep.Format.BitDepth, rep.Format.Channels, 1)
		if err := enc.Write(out); err != nil {
			return err
		}
		return enc.Close()
	})
	return rep, err
}

// Load decodes a whole file into interleaved integer samples. Files ending
// in .flac are read as FLAC, anything else as WAV. Eight bit samples are
// unsigned, as stored in WAV.
func Load(path string) (*audio.IntBuffer, Format, error) {
	if strings.EqualFold(filepath.Ext(path), ".flac") {
		return loadFlac(path)
	}
	return loadWav(path)
}

func loadWav(path string) (*audio.IntBuffer, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Format{}, err
	}
	defer file.Close()

	d := wav.NewDecoder(file)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, Format{}, err
	}
	if d.NumChans == 0 || d.WavAudioFormat != 1 {
		return nil, Format{}, ErrNotPCM
	}
	f := Format{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}
	if err := f.check(); err != nil {
		return nil, f, err
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, f, err
	}
	// Drop a trailing partial frame.
	buf.Data = buf.Data[:len(buf.Data)-len(buf.Data)%f.Channels]
	return buf, f, nil
}

func loadFlac(path string) (*audio.IntBuffer, Format, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, Format{}, err
	}
	defer stream.Close()

	f := Format{
		SampleRate: int(stream.Info.SampleRate),
		Channels:   int(stream.Info.NChannels),
		BitDepth:   int(stream.Info.BitsPerSample),
	}
	if err := f.check(); err != nil {
		return nil, f, err
	}

	var data []int
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, f, err
		}
		for i := range frame.Subframes[0].Samples {
			for _, sub := range frame.Subframes {
				s := int(sub.Samples[i])
				if f.BitDepth == 8 {
					s += 128
				}
				data = append(data, s)
			}
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		Data:           data,
		SourceBitDepth: f.BitDepth,
	}
	return buf, f, nil
}
