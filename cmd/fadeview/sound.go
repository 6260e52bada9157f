package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	soundSampleRate = beep.SampleRate(44100)
	tickDuration    = 25 * time.Millisecond
	baseTickFreq    = 330.0
	minTickFreq     = 110.0
)

// crumbleSound plays a short sine tick, lower for every completed layer.
type crumbleSound struct{}

func newCrumbleSound() (*crumbleSound, error) {
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &crumbleSound{}, nil
}

// tickFrequency 层数越深音调越低
func tickFrequency(layer int) float64 {
	freq := baseTickFreq - 20*float64(layer)
	if freq < minTickFreq {
		return minTickFreq
	}
	return freq
}

func (s *crumbleSound) Tick(layer int) {
	sine, err := generators.SineTone(soundSampleRate, tickFrequency(layer))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(soundSampleRate.N(tickDuration), sine))
}

func (s *crumbleSound) Close() {
	speaker.Close()
}
