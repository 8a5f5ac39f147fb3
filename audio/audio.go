// Package audio decodes audio files into mono float64 clips for
// analysis. WAV, MP3, OGG Vorbis, and FLAC are supported; multi-channel
// sources are reduced to their first channel.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
)

// ErrUnsupportedFormat reports a file extension no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Clip is decoded audio reduced to the first channel, with samples
// normalized to [-1, 1].
type Clip struct {
	Samples    []float64
	SampleRate float64
	// Channels is the channel count of the source before reduction.
	Channels int

	Path   string
	Title  string
	Artist string
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / c.SampleRate * float64(time.Second))
}

// Decode reads an audio file, selecting the decoder by extension.
// MP3 files contribute ID3v2 title and artist tags when present; the
// title otherwise falls back to the file name.
func Decode(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	var clip *Clip
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		clip, err = DecodeWAV(f)
	case ".mp3":
		clip, err = DecodeMP3(f)
	case ".ogg", ".oga":
		clip, err = DecodeOGG(f)
	case ".flac":
		clip, err = DecodeFLAC(f)
	default:
		return nil, fmt.Errorf("audio: %q: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	clip.Path = path
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		readTags(path, clip)
	}
	if clip.Title == "" {
		base := filepath.Base(path)
		clip.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return clip, nil
}

// readTags fills Title and Artist from ID3v2 tags, leaving them empty
// when the file carries none.
func readTags(path string, clip *Clip) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer tag.Close()

	clip.Title = strings.TrimSpace(tag.Title())
	clip.Artist = strings.TrimSpace(tag.Artist())
}
