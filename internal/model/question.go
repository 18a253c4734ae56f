package model

import "encoding/json"

// Question 题库题目，种子导入后不再变更
// swagger:model Question
type Question struct {
	BaseModel
	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	Options       string `gorm:"type:text;not null" json:"-"` // JSON 编码的选项列表
	CorrectAnswer string `gorm:"size:255;not null" json:"-"`
	Explanation   string `gorm:"type:text;not null" json:"-"`
	Category      string `gorm:"size:50;index;not null" json:"category"`
	Difficulty    string `gorm:"size:20;not null" json:"difficulty"`
	PointsValue   int    `gorm:"default:10" json:"points_value"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList 解码选项列表，解码失败返回空列表
func (q *Question) OptionList() []string {
	var options []string
	if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
		return []string{}
	}
	return options
}

// SetOptions 编码并写入选项列表
func (q *Question) SetOptions(options []string) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	q.Options = string(data)
	return nil
}
