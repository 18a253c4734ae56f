package repository

import (
	"cyber_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Create 追加一条答题流水；传入tx以便与加分在同一事务中执行
func (r *AttemptRepository) Create(tx *gorm.DB, attempt *model.QuestionAttempt) error {
	return tx.Create(attempt).Error
}

func (r *AttemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountCorrectByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuestionAttempt{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}

// RecentByUser 最近limit条流水，新的在前
func (r *AttemptRepository) RecentByUser(userID uint, limit int) ([]model.QuestionAttempt, error) {
	var attempts []model.QuestionAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// CategoryStat 按题目分类聚合的答题统计
type CategoryStat struct {
	Category string `json:"category"`
	Attempts int64  `json:"attempts"`
	Correct  int64  `json:"correct"`
}

// CategoryStatsByUser 联表题库，按分类统计答题次数与答对次数
func (r *AttemptRepository) CategoryStatsByUser(userID uint) ([]CategoryStat, error) {
	var stats []CategoryStat
	err := r.DB.Model(&model.QuestionAttempt{}).
		Select("questions.category AS category, COUNT(user_attempts.id) AS attempts, SUM(CASE WHEN user_attempts.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("JOIN questions ON questions.id = user_attempts.question_id").
		Where("user_attempts.user_id = ?", userID).
		Group("questions.category").
		Scan(&stats).Error
	return stats, err
}

// SumPointsByUser 流水中积分合计，用于与用户累计积分核对
func (r *AttemptRepository) SumPointsByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.QuestionAttempt{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&total).Error
	return total, err
}
