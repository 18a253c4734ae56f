package model

import "time"

// DailyChallenge 每日挑战题目集合，目前仅作为配置数据保留，没有对外接口
// swagger:model DailyChallenge
type DailyChallenge struct {
	UUIDBase
	Date        time.Time `gorm:"uniqueIndex;not null" json:"date"`
	QuestionIDs string    `gorm:"type:text;not null" json:"-"` // JSON 编码的题目ID列表
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}
