package systems

// InputSource 输入边界：每帧查询一次飞行键是否处于按下状态
//
// 核心逻辑不直接依赖任何输入库，桌面端、终端端各自提供实现。
type InputSource interface {
	FlapPressed() bool
}

// Display 显示边界：分数或提示文本变化时推送
type Display interface {
	ShowScore(score int)
	ShowMessage(message string)
}

// SoundEffect 音效类型
type SoundEffect int

const (
	// SoundFlap 飞行键按下
	SoundFlap SoundEffect = iota
	// SoundScore 得分
	SoundScore
	// SoundCrash 撞击
	SoundCrash
)

// SoundPlayer 音效播放接口，可为 nil
type SoundPlayer interface {
	PlaySound(effect SoundEffect)
}

// ScoreRecorder 一局结束（方块落地）时记录成绩，可为 nil
type ScoreRecorder interface {
	RecordScore(score int)
}

// Hooks 游戏循环的外部协作者集合，所有字段都可为 nil
type Hooks struct {
	Display  Display
	Sound    SoundPlayer
	Recorder ScoreRecorder
}

func (h Hooks) showScore(score int) {
	if h.Display != nil {
		h.Display.ShowScore(score)
	}
}

func (h Hooks) showMessage(message string) {
	if h.Display != nil {
		h.Display.ShowMessage(message)
	}
}

func (h Hooks) playSound(effect SoundEffect) {
	if h.Sound != nil {
		h.Sound.PlaySound(effect)
	}
}

func (h Hooks) recordScore(score int) {
	if h.Recorder != nil {
		h.Recorder.RecordScore(score)
	}
}

// FixedInput 固定输入，用于测试与无输入帧
type FixedInput bool

// FlapPressed 实现 InputSource
func (f FixedInput) FlapPressed() bool {
	return bool(f)
}

// String 音效名称，与 config.DefaultSoundTones 的键一致
func (e SoundEffect) String() string {
	switch e {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}
