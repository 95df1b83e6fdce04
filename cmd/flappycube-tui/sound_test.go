package main

import (
	"math"
	"testing"

	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
	"github.com/gopxl/beep"
)

func newTestSound(settings *save.SettingsManager) (*beepSound, *[]beep.Streamer) {
	var played []beep.Streamer
	b := &beepSound{
		sampleRate: terminalSampleRate,
		tones:      config.DefaultSoundTones(),
		settings:   settings,
		play: func(streamers ...beep.Streamer) {
			played = append(played, streamers...)
		},
	}
	return b, &played
}

// drain 读完整个流，返回采样数和最大振幅
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestBeepSoundStreamer(t *testing.T) {
	b, _ := newTestSound(nil)
	tones := config.DefaultSoundTones()

	for _, effect := range []systems.SoundEffect{systems.SoundFlap, systems.SoundScore, systems.SoundCrash} {
		t.Run(effect.String(), func(t *testing.T) {
			s, err := b.streamer(effect, 0.5)
			if err != nil {
				t.Fatalf("streamer() error: %v", err)
			}
			tone := tones[effect.String()]

			n, peak := drain(s)
			if want := tone.Samples(int(terminalSampleRate)); n != want {
				t.Errorf("samples = %d, want %d", n, want)
			}
			if peak <= 0 {
				t.Error("tone should not be silent")
			}
			if peak > tone.Volume*0.5+1e-9 {
				t.Errorf("peak = %f, want <= %f", peak, tone.Volume*0.5)
			}
		})
	}
}

func TestBeepSoundUnknownEffect(t *testing.T) {
	b, _ := newTestSound(nil)
	if _, err := b.streamer(systems.SoundEffect(99), 1); err == nil {
		t.Error("expected error for unknown sound effect")
	}
}

func TestBeepSoundMuted(t *testing.T) {
	b, _ := newTestSound(nil)
	s, err := b.streamer(systems.SoundFlap, 0)
	if err != nil {
		t.Fatalf("streamer() error: %v", err)
	}
	if _, peak := drain(s); peak != 0 {
		t.Errorf("muted peak = %f, want 0", peak)
	}
}

func TestBeepSoundRespectsSettings(t *testing.T) {
	settings := save.NewSettingsManager(nil)
	b, played := newTestSound(settings)

	b.PlaySound(systems.SoundScore)
	if len(*played) != 1 {
		t.Fatalf("played %d streamers, want 1", len(*played))
	}

	settings.SetSoundEnabled(false)
	b.PlaySound(systems.SoundScore)
	if len(*played) != 1 {
		t.Errorf("sound disabled, played %d streamers, want 1", len(*played))
	}
}
