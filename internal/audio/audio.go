// Package audio plays the game's short sound cues. Cues are synthesized at
// startup, so the game ships without sound files.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
)

const (
	SampleRate   = 44100
	channelCount = 2
	bytesPerSamp = 2
	amplitude    = 0.35
)

// The oto context can only be created once per process.
var (
	otoContext     *oto.Context
	otoContextOnce sync.Once
	otoContextErr  error
)

func initOtoContext() {
	otoContextOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		otoContext, ready, otoContextErr = oto.NewContext(op)
		if otoContextErr != nil {
			return
		}
		<-ready
	})
}

type Cue int

const (
	CueScore Cue = iota
	CueHit
	CuePickup
	CueGameOver
	CueBuild
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CuePickup:
		return "pickup"
	case CueGameOver:
		return "game-over"
	case CueBuild:
		return "build"
	}
	return "unknown"
}

type note struct {
	freq float64
	dur  float64
}

var cueNotes = map[Cue][]note{
	CueScore:    {{660, 0.07}, {880, 0.09}},
	CueHit:      {{180, 0.12}, {140, 0.14}},
	CuePickup:   {{990, 0.05}, {1320, 0.05}, {1760, 0.08}},
	CueGameOver: {{440, 0.2}, {330, 0.2}, {220, 0.4}},
	CueBuild:    {{260, 0.06}},
}

// Synthesize renders cue as interleaved stereo 16-bit little-endian PCM.
func Synthesize(cue Cue, rate int) []byte {
	var buf bytes.Buffer
	for _, n := range cueNotes[cue] {
		buf.Write(Tone(n.freq, n.dur, rate))
	}
	return buf.Bytes()
}

// Tone is a sine wave at freq Hz lasting dur seconds, fading linearly to
// silence, as interleaved stereo 16-bit little-endian PCM.
func Tone(freq, dur float64, rate int) []byte {
	frames := int(dur * float64(rate))
	if frames <= 0 || rate <= 0 {
		return nil
	}
	out := make([]byte, frames*channelCount*bytesPerSamp)
	for i := 0; i < frames; i++ {
		fade := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * amplitude * fade
		s := uint16(int16(v * math.MaxInt16))
		off := i * channelCount * bytesPerSamp
		binary.LittleEndian.PutUint16(out[off:], s)
		binary.LittleEndian.PutUint16(out[off+2:], s)
	}
	return out
}

// Player plays cues. A Player without an audio device stays silent.
type Player struct {
	mu      sync.Mutex
	ctx     *oto.Context
	pcm     map[Cue][]byte
	playing []*oto.Player
	volume  float64
	muted   bool
	logger  *log.Logger
}

// NewPlayer opens the audio device. When that fails the error is logged
// and a silent player is returned.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := NewSilentPlayer(logger)

	initOtoContext()
	if otoContextErr != nil || otoContext == nil {
		p.logger.Warn("audio device unavailable, sound disabled", "err", otoContextErr)
		return p
	}
	p.ctx = otoContext
	for c := Cue(0); c < cueCount; c++ {
		p.pcm[c] = Synthesize(c, SampleRate)
	}
	p.logger.Debug("audio context initialized", "rate", SampleRate)
	return p
}

func NewSilentPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		pcm:    make(map[Cue][]byte),
		volume: 1,
		logger: logger.WithPrefix("audio"),
	}
}

// Enabled reports whether cues reach a device.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctx != nil && !p.muted
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = min(max(v, 0), 1)
	p.mu.Unlock()
}

// Play starts cue and returns immediately.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx == nil || p.muted {
		return
	}
	p.prune()

	data, ok := p.pcm[cue]
	if !ok || len(data) == 0 {
		return
	}
	player := p.ctx.NewPlayer(bytes.NewReader(data))
	player.SetVolume(p.volume)
	player.Play()
	p.playing = append(p.playing, player)
}

// prune drops players that have finished. Callers hold p.mu.
func (p *Player) prune() {
	kept := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			kept = append(kept, pl)
			continue
		}
		pl.Close()
	}
	p.playing = kept
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pl := range p.playing {
		pl.Close()
	}
	p.playing = nil
}
