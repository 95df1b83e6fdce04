package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/decker502/flappycube/internal/audio"
	"github.com/decker502/flappycube/pkg/config"
	"github.com/decker502/flappycube/pkg/save"
	"github.com/decker502/flappycube/pkg/systems"
)

// AudioManager 音频管理器
// 职责：
//   - 播放游戏音效（飞行、得分、撞击），音效在首次播放时合成
//   - 应用 SettingsManager 中的开关与音量
//
// audioContext 为 nil 时所有播放都是空操作。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *save.SettingsManager
	tones           map[string]config.ToneSpec
	soundPlayers    map[systems.SoundEffect]*audio.Player
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *save.SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		tones:           config.DefaultSoundTones(),
		soundPlayers:    make(map[systems.SoundEffect]*audio.Player),
	}
}

// PlaySound 实现 systems.SoundPlayer
func (am *AudioManager) PlaySound(effect systems.SoundEffect) {
	if am.audioContext == nil {
		return
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return
	}

	player := am.getSoundPlayer(effect)
	if player == nil {
		return
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", effect, err)
	}
	player.Play()
}

// PreloadSounds 预先合成所有音效，避免第一次播放时卡顿
func (am *AudioManager) PreloadSounds() {
	if am.audioContext == nil {
		return
	}
	for _, effect := range []systems.SoundEffect{systems.SoundFlap, systems.SoundScore, systems.SoundCrash} {
		am.getSoundPlayer(effect)
	}
}

func (am *AudioManager) getSoundPlayer(effect systems.SoundEffect) *audio.Player {
	if player, ok := am.soundPlayers[effect]; ok {
		return player
	}

	tone, ok := am.tones[effect.String()]
	if !ok {
		log.Printf("[AudioManager] Warning: No tone for sound %s", effect)
		return nil
	}

	stream := sfx.NewToneStream(tone, am.audioContext.SampleRate())
	player, err := am.audioContext.NewPlayer(stream)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", effect, err)
		return nil
	}
	am.soundPlayers[effect] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return save.DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
