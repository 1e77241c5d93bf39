// Package chime plays short notification tones through the system audio
// device via oto. The audio context is armed explicitly and lazily: until
// Init succeeds, every Ring is a silent skip, never an error, so the tick
// path can call it unconditionally.
package chime

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/simmer/internal/logger"
)

// Chime synthesizes and plays notification tones. Safe for concurrent use.
type Chime struct {
	log *logger.Logger

	mu  sync.Mutex
	ctx *oto.Context // nil until Init succeeds

	phasePCM      []byte
	completionPCM []byte
}

// New creates a chime. No audio resources are claimed until Init.
func New(log *logger.Logger) *Chime {
	return &Chime{
		log:           log,
		phasePCM:      synthesize(phaseMelody),
		completionPCM: synthesize(completionMelody),
	}
}

// Init arms the audio context. Idempotent: calling it again after success
// is a no-op. Returns an error when the audio device is unavailable, in
// which case the chime stays silent and Init may be retried.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx != nil {
		return nil
	}

	ctx, readyChan, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return err
	}
	<-readyChan

	c.ctx = ctx
	c.log.Info("chime armed (rate=%d)", sampleRate)
	return nil
}

// Ready reports whether the audio context is armed.
func (c *Chime) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx != nil
}

// Ring plays the phase chime. Fire-and-forget: playback runs on its own
// goroutine and an unarmed chime skips silently.
func (c *Chime) Ring() {
	c.play(c.phasePCM)
}

// RingUrgent plays the longer completion chime.
func (c *Chime) RingUrgent() {
	c.play(c.completionPCM)
}

func (c *Chime) play(pcm []byte) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()

	if ctx == nil {
		c.log.Debug("chime not armed, skipping tone")
		return
	}

	go func() {
		player := ctx.NewPlayer(bytes.NewReader(pcm))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			c.log.Error("chime: closing player: %v", err)
		}
	}()
}
