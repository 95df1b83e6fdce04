// Package audio 合成游戏音效
//
// 桌面端（ebiten）与终端端（beep）共用同一套音效参数和波形，
// 不依赖任何音频文件。
package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/decker502/flappycube/pkg/config"
)

// Synthesize 生成单声道采样，取值范围 [-Volume, Volume]
//
// 频率线性滑动，相位连续累加，避免频率变化时出现爆音。
func Synthesize(tone config.ToneSpec, sampleRate int) []float64 {
	total := tone.Samples(sampleRate)
	samples := make([]float64, total)

	phase := 0.0
	for i := range samples {
		phase += 2 * math.Pi * tone.FrequencyAt(i, total) / float64(sampleRate)
		samples[i] = math.Sin(phase) * tone.EnvelopeAt(i, total)
	}
	return samples
}

// EncodePCM16Stereo 编码为 16 位小端立体声（左右声道相同）
func EncodePCM16Stereo(samples []float64) []byte {
	data := make([]byte, len(samples)*4)
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		pcm := int16(v * math.MaxInt16)
		data[i*4] = byte(pcm)
		data[i*4+1] = byte(pcm >> 8)
		data[i*4+2] = byte(pcm)
		data[i*4+3] = byte(pcm >> 8)
	}
	return data
}

// ToneStream 合成音效的 PCM 流
// 实现 io.ReadSeeker，可直接交给 ebiten 的 audio.Player（支持 Rewind）
type ToneStream struct {
	data       []byte // 16 位立体声 PCM
	sampleRate int
	offset     int64
}

// NewToneStream 合成音效并返回可重复播放的 PCM 流
func NewToneStream(tone config.ToneSpec, sampleRate int) *ToneStream {
	return &ToneStream{
		data:       EncodePCM16Stereo(Synthesize(tone, sampleRate)),
		sampleRate: sampleRate,
	}
}

// Read implements io.Reader.
func (s *ToneStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}
	s.offset = newOffset
	return newOffset, nil
}

// Length PCM 数据字节数
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate 采样率
func (s *ToneStream) SampleRate() int {
	return s.sampleRate
}
