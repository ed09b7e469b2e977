package testutil

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWav encodes interleaved 16-bit samples as a PCM WAV file.
func WriteWav(path string, rate, channels int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

// Header describes a canonical 44 byte WAV header. Fields are written as
// given, so inconsistent or corrupt headers can be produced.
type Header struct {
	Format     uint16
	Channels   uint16
	Rate       uint32
	Bits       uint16
	DataSize   uint32
	RiffTag    string
	WaveTag    string
	OmitFormat bool
}

// PCM16 returns a valid mono 16-bit header for n samples at rate.
func PCM16(rate, n int) Header {
	return Header{
		Format:   1,
		Channels: 1,
		Rate:     uint32(rate),
		Bits:     16,
		DataSize: uint32(n * 2),
		RiffTag:  "RIFF",
		WaveTag:  "WAVE",
	}
}

// RawWav assembles a WAV byte stream from h followed by payload.
func RawWav(h Header, payload []byte) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	fmtSize := 0
	if !h.OmitFormat {
		fmtSize = 24
	}
	b.WriteString(h.RiffTag)
	binary.Write(&b, le, uint32(4+fmtSize+8+len(payload)))
	b.WriteString(h.WaveTag)
	if !h.OmitFormat {
		b.WriteString("fmt ")
		binary.Write(&b, le, uint32(16))
		binary.Write(&b, le, h.Format)
		binary.Write(&b, le, h.Channels)
		binary.Write(&b, le, h.Rate)
		blockAlign := h.Channels * h.Bits / 8
		binary.Write(&b, le, h.Rate*uint32(blockAlign))
		binary.Write(&b, le, blockAlign)
		binary.Write(&b, le, h.Bits)
	}
	b.WriteString("data")
	binary.Write(&b, le, h.DataSize)
	b.Write(payload)
	return b.Bytes()
}

// LE16 encodes samples as little endian bytes.
func LE16(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}
