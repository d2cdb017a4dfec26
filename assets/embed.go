package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

//go:embed sfx/*.wav
var assetsFS embed.FS

var (
	audioContextOnce sync.Once
	audioContext     *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSound, path)
	}
	return b, nil
}

// DecodePCM decodes an embedded wav into 16-bit stereo PCM at SampleRate,
// ready for audio.Context.NewPlayerFromBytes.
func DecodePCM(path string) ([]byte, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(cleanAssetPath(path)), ".wav") {
		return nil, fmt.Errorf("assets: unsupported audio format %q", path)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: read wav %q: %w", path, err)
	}
	return pcm, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
