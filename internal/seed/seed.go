package seed

import (
	"cyber_quiz_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// SeedQuestions 幂等导入题库：已有题目则直接跳过。
// 调用方只记录日志，不向上传播错误。
func SeedQuestions(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, q := range Questions {
			if !containsOption(q.Options, q.CorrectAnswer) {
				return fmt.Errorf("seed question %q: correct answer is not one of the options", q.QuestionText)
			}

			question := &model.Question{
				QuestionText:  q.QuestionText,
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				Category:      q.Category,
				Difficulty:    q.Difficulty,
				PointsValue:   q.PointsValue,
			}
			if err := question.SetOptions(q.Options); err != nil {
				return err
			}
			if err := tx.Create(question).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
