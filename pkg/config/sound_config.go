package config

import "time"

// ToneSpec 合成音效参数
//
// 音效不依赖音频文件：频率在 Duration 内从 Frequency 线性滑到 EndFrequency，
// 音量线性衰减到 0。
type ToneSpec struct {
	Frequency    float64       // 起始频率（Hz）
	EndFrequency float64       // 结束频率（Hz），与起始相同时为单音
	Duration     time.Duration // 时长
	Volume       float64       // 峰值音量 0.0 ~ 1.0
}

// AudioSampleRate 合成音效使用的采样率
const AudioSampleRate = 48000

// DefaultSoundTones 三种游戏音效，键为音效名称
func DefaultSoundTones() map[string]ToneSpec {
	return map[string]ToneSpec{
		"flap": {
			Frequency:    520,
			EndFrequency: 780,
			Duration:     70 * time.Millisecond,
			Volume:       0.35,
		},
		"score": {
			Frequency:    1319,
			EndFrequency: 1319,
			Duration:     120 * time.Millisecond,
			Volume:       0.4,
		},
		"crash": {
			Frequency:    220,
			EndFrequency: 55,
			Duration:     350 * time.Millisecond,
			Volume:       0.6,
		},
	}
}

// Samples 指定采样率下的采样点数
func (t ToneSpec) Samples(sampleRate int) int {
	return int(t.Duration.Seconds() * float64(sampleRate))
}

// FrequencyAt 第 i 个采样点的瞬时频率
func (t ToneSpec) FrequencyAt(i, total int) float64 {
	if total <= 1 {
		return t.Frequency
	}
	progress := float64(i) / float64(total-1)
	return t.Frequency + (t.EndFrequency-t.Frequency)*progress
}

// EnvelopeAt 第 i 个采样点的音量包络（线性衰减）
func (t ToneSpec) EnvelopeAt(i, total int) float64 {
	if total <= 0 {
		return 0
	}
	return t.Volume * (1 - float64(i)/float64(total))
}
