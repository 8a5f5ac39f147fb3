package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// DecodeWAV decodes a RIFF/WAVE stream. 8, 16, 24, and 32 bit PCM are
// supported.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, errors.New("audio: not a valid WAV file")
	}

	var scale float64
	switch dec.BitDepth {
	case 8:
		scale = 128
	case 16:
		scale = 32768
	case 24:
		scale = 8388608
	case 32:
		scale = 2147483648
	default:
		return nil, fmt.Errorf("audio: unsupported WAV bit depth %d", dec.BitDepth)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, errors.New("audio: WAV reports no channels")
	}

	clip := &Clip{
		SampleRate: float64(dec.SampleRate),
		Channels:   channels,
	}

	buf := &goaudio.IntBuffer{
		Data: make([]int, 4096*channels),
		Format: &goaudio.Format{
			SampleRate:  int(dec.SampleRate),
			NumChannels: channels,
		},
	}

	// The channel cursor carries across chunks in case a read stops
	// mid-frame.
	channelCursor := 0
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return nil, fmt.Errorf("audio: WAV read failed: %w", err)
		}
		if n == 0 {
			break
		}

		for _, s := range buf.Data[:n] {
			if channelCursor == 0 {
				v := float64(s)
				if dec.BitDepth == 8 {
					// 8 bit WAV is unsigned.
					v -= 128
				}
				clip.Samples = append(clip.Samples, v/scale)
			}
			channelCursor++
			if channelCursor == channels {
				channelCursor = 0
			}
		}
	}

	return clip, nil
}

// DecodeMP3 decodes an MPEG-1 layer 3 stream. The decoder always emits
// 16-bit little-endian stereo frames; the left channel is kept.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audio: MP3 decode failed: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audio: MP3 read failed: %w", err)
	}

	samples := make([]float64, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		left := int16(binary.LittleEndian.Uint16(raw[i:]))
		samples = append(samples, float64(left)/32768)
	}

	return &Clip{
		Samples:    samples,
		SampleRate: float64(dec.SampleRate()),
		Channels:   2,
	}, nil
}

// DecodeOGG decodes an Ogg Vorbis stream.
func DecodeOGG(r io.Reader) (*Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("audio: OGG decode failed: %w", err)
	}

	channels := format.Channels
	if channels < 1 {
		return nil, errors.New("audio: OGG reports no channels")
	}

	samples := make([]float64, 0, len(data)/channels)
	for i := 0; i < len(data); i += channels {
		samples = append(samples, float64(data[i]))
	}

	return &Clip{
		Samples:    samples,
		SampleRate: float64(format.SampleRate),
		Channels:   channels,
	}, nil
}

// DecodeFLAC decodes a FLAC stream.
func DecodeFLAC(r io.Reader) (*Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("audio: FLAC decode failed: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, errors.New("audio: FLAC reports no channels")
	}
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	clip := &Clip{
		Samples:    make([]float64, 0, info.NSamples),
		SampleRate: float64(info.SampleRate),
		Channels:   channels,
	}

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("audio: FLAC frame parse failed: %w", err)
		}

		for _, s := range frame.Subframes[0].Samples {
			clip.Samples = append(clip.Samples, float64(s)/scale)
		}
	}

	return clip, nil
}
