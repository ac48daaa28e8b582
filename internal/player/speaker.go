package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// initSpeaker initializes the shared speaker at the rate of the first
// stream. Later streams are resampled to that rate.
func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerErr
}

func resampled(rate beep.SampleRate, s beep.Streamer) beep.Streamer {
	if rate == speakerRate {
		return s
	}
	return beep.Resample(4, rate, speakerRate, s)
}
