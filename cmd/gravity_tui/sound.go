package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 40 * time.Millisecond
	baseFrequency = 440.0
)

// clicker 播放触地音效
type clicker struct {
	enabled bool
}

// newClicker 初始化扬声器，失败时返回静音的 clicker
func newClicker(enabled bool) *clicker {
	if !enabled {
		return &clicker{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// 没有声音也能运行
		log.Printf("[TUI] Audio initialization failed: %v", err)
		return &clicker{}
	}
	return &clicker{enabled: true}
}

// click 播放一次短促的正弦音，列号越大音调越高
func (c *clicker) click(column int) {
	if !c.enabled {
		return
	}
	freq := baseFrequency * (1 + 0.25*float64(column))
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("[TUI] SineTone(%.0f): %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickDuration), sine))
}

func (c *clicker) close() {
	if c.enabled {
		speaker.Close()
	}
}
