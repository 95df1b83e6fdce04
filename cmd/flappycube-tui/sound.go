package main

import (
	"fmt"
	"log"
	"math"
	"time"

	sfx "github.com/decker502/flappycube/internal/audio"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// terminalSampleRate 终端端扬声器采样率
const terminalSampleRate = beep.SampleRate(44100)

// beepSound 基于 beep 扬声器的音效播放器，实现 systems.SoundPlayer
type beepSound struct {
	sampleRate beep.SampleRate
	tones      map[string]config.ToneSpec
	settings   *save.SettingsManager

	// play 默认是 speaker.Play，测试时替换
	play func(streamers ...beep.Streamer)
}

// newBeepSound 初始化扬声器
//
// 扬声器初始化失败时返回错误，调用方可以继续无声运行。
func newBeepSound(settings *save.SettingsManager) (*beepSound, error) {
	if err := speaker.Init(terminalSampleRate, terminalSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &beepSound{
		sampleRate: terminalSampleRate,
		tones:      config.DefaultSoundTones(),
		settings:   settings,
		play:       speaker.Play,
	}, nil
}

// Close 关闭扬声器
func (b *beepSound) Close() {
	speaker.Close()
}

// PlaySound 实现 systems.SoundPlayer
func (b *beepSound) PlaySound(effect systems.SoundEffect) {
	volume := 1.0
	if b.settings != nil {
		s := b.settings.GetSettings()
		if !s.SoundEnabled {
			return
		}
		volume = s.SoundVolume
	}

	streamer, err := b.streamer(effect, volume)
	if err != nil {
		log.Printf("[Sound] Warning: %v", err)
		return
	}
	b.play(streamer)
}

// streamer 为音效创建一次性的流
//
// 恒定频率的音效直接用正弦发生器截取，滑音则使用预先合成的采样。
func (b *beepSound) streamer(effect systems.SoundEffect, volume float64) (beep.Streamer, error) {
	tone, ok := b.tones[effect.String()]
	if !ok {
		return nil, fmt.Errorf("no tone for sound effect %s", effect)
	}

	total := tone.Samples(int(b.sampleRate))
	var s beep.Streamer
	if tone.Frequency == tone.EndFrequency {
		sine, err := generators.SineTone(b.sampleRate, tone.Frequency)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s tone: %w", effect, err)
		}
		s = &toneEnvelope{streamer: beep.Take(total, sine), tone: tone, total: total}
	} else {
		s = newSampleStreamer(sfx.Synthesize(tone, int(b.sampleRate)))
	}
	return withVolume(s, volume), nil
}

// withVolume 按线性音量缩放，0 音量静音
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// sampleStreamer 播放单声道采样，左右声道相同
type sampleStreamer struct {
	samples []float64
	pos     int
}

func newSampleStreamer(samples []float64) *sampleStreamer {
	return &sampleStreamer{samples: samples}
}

func (s *sampleStreamer) Stream(buf [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy2(buf, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

func copy2(dst [][2]float64, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// toneEnvelope 给正弦发生器套上与合成音效相同的衰减包络
type toneEnvelope struct {
	streamer beep.Streamer
	tone     config.ToneSpec
	pos      int
	total    int
}

func (e *toneEnvelope) Stream(buf [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(buf)
	for i := 0; i < n; i++ {
		gain := e.tone.EnvelopeAt(e.pos, e.total)
		buf[i][0] *= gain
		buf[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *toneEnvelope) Err() error { return e.streamer.Err() }
