package service

import (
	"context"
	"cyber_quiz_backend/internal/model"
	"cyber_quiz_backend/internal/repository"
	"cyber_quiz_backend/internal/util"
	"cyber_quiz_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const categoriesCacheKey = "quiz:categories"

type QuizService struct {
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
	db           *gorm.DB
}

func NewQuizService(
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.AttemptRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	db *gorm.DB,
) *QuizService {
	return &QuizService{
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
		db:           db,
	}
}

type SubmitAnswerRequest struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
	TimeTaken      *int   `json:"time_taken"`
}

type AnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	PointsEarned  int    `json:"points_earned"`
	TotalPoints   int    `json:"total_points"`
}

// QuestionResponse 出题视图，不含答案与解析
type QuestionResponse struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Category     string   `json:"category"`
	Difficulty   string   `json:"difficulty"`
	PointsValue  int      `json:"points_value"`
}

type CategoryBreakdown struct {
	Attempts int64   `json:"attempts"`
	Correct  int64   `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type RecentAttempt struct {
	QuestionID   uint      `json:"question_id"`
	IsCorrect    bool      `json:"is_correct"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserStats struct {
	TotalPoints         int                          `json:"total_points"`
	TotalAttempts       int64                        `json:"total_attempts"`
	CorrectAttempts     int64                        `json:"correct_attempts"`
	Accuracy            float64                      `json:"accuracy"`
	Rank                int64                        `json:"rank"`
	QuestionsByCategory map[string]CategoryBreakdown `json:"questions_by_category"`
	RecentActivity      []RecentAttempt              `json:"recent_activity"`
}

type LeaderboardEntry struct {
	Rank            int64   `json:"rank"`
	Username        string  `json:"username"`
	TotalPoints     int     `json:"total_points"`
	CorrectAttempts int64   `json:"correct_attempts"`
	TotalAttempts   int64   `json:"total_attempts"`
	Accuracy        float64 `json:"accuracy"`
}

// SubmitAnswer 判题并记录流水。流水追加与加分在同一事务中，
// 加分走单条UPDATE，同一用户并发提交不会丢积分。
// 题目不存在时不产生任何写入。
func (s *QuizService) SubmitAnswer(userID uint, req SubmitAnswerRequest) (*AnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	// 精确字符串匹配
	isCorrect := req.SelectedAnswer == question.CorrectAnswer
	pointsEarned := 0
	if isCorrect {
		pointsEarned = question.PointsValue
	}

	attempt := &model.QuestionAttempt{
		UserID:       userID,
		QuestionID:   question.ID,
		IsCorrect:    isCorrect,
		PointsEarned: pointsEarned,
		TimeTaken:    req.TimeTaken,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.AttemptRepo.Create(tx, attempt); err != nil {
			return err
		}
		if isCorrect {
			if err := s.UserRepo.AddPoints(tx, userID, pointsEarned); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.ObserveAnswer(question.Category, isCorrect)

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
		PointsEarned:  pointsEarned,
		TotalPoints:   user.TotalPoints,
	}, nil
}

// UserStats 用户统计。排名规则：1 + 积分严格大于自己的用户数，同分同名次
func (s *QuizService) UserStats(userID uint) (*UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	totalAttempts, err := s.AttemptRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	correctAttempts, err := s.AttemptRepo.CountCorrectByUser(userID)
	if err != nil {
		return nil, err
	}

	higher, err := s.UserRepo.CountWithMorePoints(user.TotalPoints)
	if err != nil {
		return nil, err
	}

	categoryStats, err := s.AttemptRepo.CategoryStatsByUser(userID)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string]CategoryBreakdown, len(categoryStats))
	for _, cs := range categoryStats {
		byCategory[cs.Category] = CategoryBreakdown{
			Attempts: cs.Attempts,
			Correct:  cs.Correct,
			Accuracy: accuracy(cs.Correct, cs.Attempts),
		}
	}

	recent, err := s.AttemptRepo.RecentByUser(userID, 10)
	if err != nil {
		return nil, err
	}
	recentActivity := make([]RecentAttempt, 0, len(recent))
	for _, a := range recent {
		recentActivity = append(recentActivity, RecentAttempt{
			QuestionID:   a.QuestionID,
			IsCorrect:    a.IsCorrect,
			PointsEarned: a.PointsEarned,
			CreatedAt:    a.CreatedAt,
		})
	}

	return &UserStats{
		TotalPoints:         user.TotalPoints,
		TotalAttempts:       totalAttempts,
		CorrectAttempts:     correctAttempts,
		Accuracy:            accuracy(correctAttempts, totalAttempts),
		Rank:                higher + 1,
		QuestionsByCategory: byCategory,
		RecentActivity:      recentActivity,
	}, nil
}

// RandomQuestions 过滤后等概率无放回抽取count道题。
// 匹配数量不足时返回全部匹配题目，不报错不补齐。
func (s *QuizService) RandomQuestions(count int, category, difficulty string) ([]QuestionResponse, error) {
	questions, err := s.QuestionRepo.FindAll(category, difficulty)
	if err != nil {
		return nil, err
	}

	if count > len(questions) {
		count = len(questions)
	}

	// 洗牌取前缀，每个同大小子集概率相同
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	selected := make([]QuestionResponse, 0, count)
	for _, q := range questions[:count] {
		selected = append(selected, QuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.OptionList(),
			Category:     q.Category,
			Difficulty:   q.Difficulty,
			PointsValue:  q.PointsValue,
		})
	}

	return selected, nil
}

// Categories 分类列表。题库运行期不变，走Redis缓存；缓存不可用时直接查库
func (s *QuizService) Categories() ([]string, error) {
	ctx := context.Background()

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, categoriesCacheKey).Result()
		if err == nil {
			var categories []string
			if err := json.Unmarshal([]byte(val), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.QuestionRepo.DistinctCategories()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			s.Redis.Set(ctx, categoriesCacheKey, data, time.Hour)
		}
	}

	return categories, nil
}

// Leaderboard 积分榜前limit名。名次为排序后的位置(1..limit)，
// 与UserStats的严格大于计数排名刻意保持两套口径，同分时两者会不一致
func (s *QuizService) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entry, err := s.entryForUser(&user)
		if err != nil {
			return nil, err
		}
		entry.Rank = int64(i + 1)
		leaderboard = append(leaderboard, *entry)
	}

	return leaderboard, nil
}

// MyRankEntry 当前用户的榜单条目，名次用严格大于计数口径
func (s *QuizService) MyRankEntry(userID uint) (*LeaderboardEntry, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	entry, err := s.entryForUser(user)
	if err != nil {
		return nil, err
	}

	higher, err := s.UserRepo.CountWithMorePoints(user.TotalPoints)
	if err != nil {
		return nil, err
	}
	entry.Rank = higher + 1

	return entry, nil
}

func (s *QuizService) entryForUser(user *model.User) (*LeaderboardEntry, error) {
	totalAttempts, err := s.AttemptRepo.CountByUser(user.ID)
	if err != nil {
		return nil, err
	}
	correctAttempts, err := s.AttemptRepo.CountCorrectByUser(user.ID)
	if err != nil {
		return nil, err
	}

	return &LeaderboardEntry{
		Username:        user.Username,
		TotalPoints:     user.TotalPoints,
		CorrectAttempts: correctAttempts,
		TotalAttempts:   totalAttempts,
		Accuracy:        accuracy(correctAttempts, totalAttempts),
	}, nil
}

// accuracy 正确率百分比，保留两位小数；无作答时为0.0
func accuracy(correct, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}
