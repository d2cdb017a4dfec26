package assets

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

var ErrUnknownSound = errors.New("assets: unknown sound")

const defaultMaxVoices = 24

// SoundBank plays embedded sound effects. Each call starts a fresh player so
// overlapping hits layer instead of cutting each other off.
type SoundBank struct {
	Muted     bool
	MaxVoices int

	ctx    *audio.Context
	pcm    map[string][]byte
	failed map[string]bool
	voices []*audio.Player
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		MaxVoices: defaultMaxVoices,
		ctx:       ctx,
		pcm:       map[string][]byte{},
		failed:    map[string]bool{},
	}
}

// Preload decodes sounds up front so the first hit does not stall a frame.
func (s *SoundBank) Preload(paths ...string) error {
	for _, p := range paths {
		if _, err := s.load(p); err != nil {
			return err
		}
	}
	return nil
}

// PlaySoundMany starts path at volume and returns immediately. Unknown or
// undecodable sounds are logged once and then ignored.
func (s *SoundBank) PlaySoundMany(path string, volume float64) {
	if s == nil || s.Muted || s.ctx == nil || volume <= 0 {
		return
	}
	pcm, err := s.load(path)
	if err != nil {
		return
	}

	s.prune()
	if s.MaxVoices > 0 && len(s.voices) >= s.MaxVoices {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
	s.voices = append(s.voices, p)
}

func (s *SoundBank) load(path string) ([]byte, error) {
	if pcm, ok := s.pcm[path]; ok {
		return pcm, nil
	}
	if s.failed[path] {
		return nil, ErrUnknownSound
	}
	pcm, err := DecodePCM(path)
	if err != nil {
		s.failed[path] = true
		log.Printf("assets: %v", err)
		return nil, err
	}
	s.pcm[path] = pcm
	return pcm, nil
}

func (s *SoundBank) prune() {
	writeIdx := 0
	for _, p := range s.voices {
		if p.IsPlaying() {
			s.voices[writeIdx] = p
			writeIdx++
			continue
		}
		_ = p.Close()
	}
	clear(s.voices[writeIdx:])
	s.voices = s.voices[:writeIdx]
}
