// Package wav reads and writes audio buffers as RIFF/WAVE PCM.
package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/dsp/audio"
	"github.com/cwbudde/algo-synth/dsp/core"
)

// Errors returned by the codec.
var (
	ErrInvalidParams = errors.New("wav: invalid parameters")
	ErrInvalidFile   = errors.New("wav: not a valid wave file")
)

const wavFormatPCM = 1

func quantFactor(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidParams, bitDepth)
	}
}

// Encode writes buf as PCM at the given bit depth. Samples outside
// [-1, 1] are clipped rather than wrapped.
func Encode(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidParams)
	}
	factor, err := quantFactor(bitDepth)
	if err != nil {
		return err
	}

	channels := buf.NumChannels()
	length := buf.Length()
	rate := int(buf.SampleRate())

	data := make([]int, channels*length)
	peak := factor - 1
	for ch := range channels {
		samples := buf.Channel(ch)
		for i, v := range samples {
			data[i*channels+ch] = int(core.Clamp(v, -1, 1) * peak)
		}
	}

	enc := gowav.NewEncoder(w, rate, bitDepth, channels, wavFormatPCM)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("wav: write pcm: %w", err)
	}
	return enc.Close()
}

// Decode reads a PCM wave stream into a buffer with samples scaled to
// [-1, 1).
func Decode(r io.ReadSeeker) (*audio.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: read pcm: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	factor, err := quantFactor(bitDepth)
	if err != nil {
		return nil, err
	}

	channels := intBuf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}
	length := len(intBuf.Data) / channels

	buf, err := audio.New(channels, length, float64(intBuf.Format.SampleRate))
	if err != nil {
		return nil, err
	}
	for ch := range channels {
		samples := buf.Channel(ch)
		for i := range samples {
			samples[i] = float64(intBuf.Data[i*channels+ch]) / factor
		}
	}
	return buf, nil
}
