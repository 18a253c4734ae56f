package model

// QuestionAttempt 答题流水，只追加不更新；同一用户可多次作答同一题
// swagger:model QuestionAttempt
type QuestionAttempt struct {
	BaseModel
	UserID       uint `gorm:"index;not null" json:"user_id"`
	QuestionID   uint `gorm:"index;not null" json:"question_id"`
	IsCorrect    bool `gorm:"not null" json:"is_correct"`
	PointsEarned int  `gorm:"default:0" json:"points_earned"`
	TimeTaken    *int `json:"time_taken,omitempty"` // 答题耗时（秒），可为空
}

func (QuestionAttempt) TableName() string {
	return "user_attempts"
}
