package repository

import (
	"cyber_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

// FindAll 按分类/难度过滤，空串表示不过滤
func (r *QuestionRepository) FindAll(category, difficulty string) ([]model.Question, error) {
	var questions []model.Question
	db := r.DB

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	err := db.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.Question{}).Distinct().Pluck("category", &categories).Error
	return categories, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}
