package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a short synthesized feedback tone.
type Cue uint8

const (
	CueCast Cue = iota
	CueBite
	CueCatch
	CueBreak
	CueHit
	CueDeath
	cueCount
)

// cueSpec is the tone recipe for a cue.
type cueSpec struct {
	freq     float64
	duration time.Duration
}

var cueTable = [cueCount]cueSpec{
	CueCast:  {freq: 660, duration: 60 * time.Millisecond},
	CueBite:  {freq: 880, duration: 90 * time.Millisecond},
	CueCatch: {freq: 990, duration: 140 * time.Millisecond},
	CueBreak: {freq: 220, duration: 80 * time.Millisecond},
	CueHit:   {freq: 330, duration: 50 * time.Millisecond},
	CueDeath: {freq: 110, duration: 180 * time.Millisecond},
}

const sampleRate = beep.SampleRate(44100)

// Service plays short synthesized cues through the speaker. Audio is
// strictly optional: a Service that failed to initialize (or a nil one)
// swallows every Play call, so headless runs and tests need no speaker.
type Service struct {
	mu      sync.Mutex
	enabled bool
	buffers [cueCount]*beep.Buffer
}

// NewService initializes the speaker. The returned error is advisory;
// the service is usable (silently) either way.
func NewService() (*Service, error) {
	s := &Service{}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.enabled = true
	}
	return s, err
}

// Play queues a cue on the speaker without blocking the tick.
func (s *Service) Play(cue Cue) {
	if s == nil || cue >= cueCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}

	buf := s.buffers[cue]
	if buf == nil {
		spec := cueTable[cue]
		tone, err := generators.SineTone(sampleRate, spec.freq)
		if err != nil {
			return
		}
		buf = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(beep.Take(sampleRate.N(spec.duration), tone))
		s.buffers[cue] = buf
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close releases the speaker.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
