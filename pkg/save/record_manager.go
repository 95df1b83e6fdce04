package save

import (
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// Record 历史成绩
type Record struct {
	BestScore    int       `yaml:"bestScore"`
	GamesPlayed  int       `yaml:"gamesPlayed"`
	LastScore    int       `yaml:"lastScore"`
	BestAchieved time.Time `yaml:"bestAchieved,omitempty"`
}

const (
	recordObject   = "record"
	recordProperty = "scores"
)

// RecordManager 最高分管理器
//
// 每局结束（方块落地）时由游戏循环调用 RecordScore，
// 内存中的记录立即更新，持久化在 Save 时进行。
type RecordManager struct {
	gdataManager *gdata.Manager
	record       Record
	dirty        bool

	// now 可替换的时间源
	now func() time.Time
}

// NewRecordManager 创建成绩管理器并加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 存储，可为 nil（降级模式）
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}
	if err := rm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load record: %v (starting fresh)", err)
	}
	return rm
}

// Load 从 gdata 加载记录
func (rm *RecordManager) Load() error {
	var loaded Record
	found, err := loadYAML(rm.gdataManager, recordObject, recordProperty, &loaded)
	if err != nil || !found {
		rm.record = Record{}
		return err
	}
	rm.record = loaded
	rm.dirty = false
	log.Printf("[SaveManager] Record loaded: best=%d games=%d", loaded.BestScore, loaded.GamesPlayed)
	return nil
}

// RecordScore 记录一局的最终得分
func (rm *RecordManager) RecordScore(score int) {
	rm.record.GamesPlayed++
	rm.record.LastScore = score
	if score > rm.record.BestScore {
		rm.record.BestScore = score
		rm.record.BestAchieved = rm.now()
		log.Printf("[SaveManager] New best score: %d", score)
	}
	rm.dirty = true
}

// BestScore 历史最高分
func (rm *RecordManager) BestScore() int {
	return rm.record.BestScore
}

// GamesPlayed 已完成的局数
func (rm *RecordManager) GamesPlayed() int {
	return rm.record.GamesPlayed
}

// Record 返回当前记录的副本
func (rm *RecordManager) Record() Record {
	return rm.record
}

// Save 有未保存的变化时写入 gdata
func (rm *RecordManager) Save() error {
	if !rm.dirty {
		return nil
	}
	if err := saveYAML(rm.gdataManager, recordObject, recordProperty, rm.record); err != nil {
		return err
	}
	rm.dirty = false
	return nil
}

// SaveOnExit 退出时保存
func (rm *RecordManager) SaveOnExit() {
	if err := rm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to save record: %v", err)
	}
}
