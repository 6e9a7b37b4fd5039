package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes short effect tones. Audio is best effort: when
// the speaker cannot be initialized the player stays silent and the
// game runs without sound.
type Player struct {
	enabled bool
}

func NewPlayer() *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.WithError(err).Warn("audio disabled")
		return &Player{}
	}
	return &Player{enabled: true}
}

// Eat plays a short high blip.
func (p *Player) Eat() {
	p.tone(880, 50*time.Millisecond)
}

// GameOver plays a longer low tone.
func (p *Player) GameOver() {
	p.tone(220, 200*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
