package repository

import (
	"cyber_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// AddPoints 单条UPDATE原子加分，避免服务层读改写丢失更新
func (r *UserRepository) AddPoints(tx *gorm.DB, userID uint, delta int) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_points", gorm.Expr("total_points + ?", delta)).
		Error
}

// FindTopByPoints 积分降序取前limit名，积分相同按id升序保证分页稳定
func (r *UserRepository) FindTopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("total_points DESC, id ASC").Limit(limit).Find(&users).Error
	return users, err
}

// CountWithMorePoints 积分严格大于给定值的用户数，用于排名
func (r *UserRepository) CountWithMorePoints(points int) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("total_points > ?", points).Count(&count).Error
	return count, err
}
