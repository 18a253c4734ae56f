package service_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"cyber_quiz_backend/internal/model"
	"cyber_quiz_backend/internal/repository"
	"cyber_quiz_backend/internal/service"
	"cyber_quiz_backend/internal/util"
	"cyber_quiz_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixture struct {
	db      *gorm.DB
	quiz    *service.QuizService
	users   *repository.UserRepository
	attempt *repository.AttemptRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "quiz.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	return &fixture{
		db:      db,
		quiz:    service.NewQuizService(questionRepo, attemptRepo, userRepo, nil, db),
		users:   userRepo,
		attempt: attemptRepo,
	}
}

func (f *fixture) createUser(t *testing.T, username string, points int) *model.User {
	t.Helper()
	user := &model.User{
		Username:    username,
		Email:       username + "@example.edu",
		Password:    "irrelevant",
		TotalPoints: points,
	}
	if err := f.users.Create(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (f *fixture) createQuestion(t *testing.T, category, difficulty string, points int) *model.Question {
	t.Helper()
	question := &model.Question{
		QuestionText:  fmt.Sprintf("%s question worth %d", category, points),
		CorrectAnswer: "right",
		Explanation:   "because",
		Category:      category,
		Difficulty:    difficulty,
		PointsValue:   points,
	}
	if err := question.SetOptions([]string{"right", "wrong", "also wrong"}); err != nil {
		t.Fatalf("set options: %v", err)
	}
	if err := f.db.Create(question).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}

func TestSubmitAnswerCorrect(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)
	question := f.createQuestion(t, "phishing", "easy", 10)

	result, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
		QuestionID:     question.ID,
		SelectedAnswer: "right",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !result.IsCorrect {
		t.Fatal("expected correct result")
	}
	if result.PointsEarned != 10 || result.TotalPoints != 10 {
		t.Fatalf("expected 10/10 points, got %d/%d", result.PointsEarned, result.TotalPoints)
	}
	if result.CorrectAnswer != "right" || result.Explanation != "because" {
		t.Fatalf("unexpected feedback: %+v", result)
	}

	total, err := f.attempt.CountByUser(user.ID)
	if err != nil || total != 1 {
		t.Fatalf("expected 1 ledger row, got %d (err %v)", total, err)
	}
}

func TestSubmitAnswerIncorrect(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)
	question := f.createQuestion(t, "phishing", "easy", 10)

	result, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
		QuestionID:     question.ID,
		SelectedAnswer: "wrong",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if result.IsCorrect {
		t.Fatal("expected incorrect result")
	}
	if result.PointsEarned != 0 || result.TotalPoints != 0 {
		t.Fatalf("expected no points, got %d/%d", result.PointsEarned, result.TotalPoints)
	}

	// 错误作答同样入账，积分字段为0
	total, _ := f.attempt.CountByUser(user.ID)
	correct, _ := f.attempt.CountCorrectByUser(user.ID)
	if total != 1 || correct != 0 {
		t.Fatalf("expected 1 attempt / 0 correct, got %d/%d", total, correct)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 25)

	_, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
		QuestionID:     9999,
		SelectedAnswer: "right",
	})
	if !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}

	// 查题失败不能产生任何副作用
	total, _ := f.attempt.CountByUser(user.ID)
	if total != 0 {
		t.Fatalf("expected no ledger rows, got %d", total)
	}
	refreshed, _ := f.users.FindByID(user.ID)
	if refreshed.TotalPoints != 25 {
		t.Fatalf("expected points unchanged at 25, got %d", refreshed.TotalPoints)
	}
}

func TestPointsMatchLedger(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)
	q1 := f.createQuestion(t, "phishing", "easy", 10)
	q2 := f.createQuestion(t, "passwords", "medium", 15)

	answers := []struct {
		questionID uint
		answer     string
	}{
		{q1.ID, "right"},
		{q1.ID, "wrong"},
		{q2.ID, "right"},
		{q2.ID, "right"},
	}
	for _, a := range answers {
		if _, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
			QuestionID:     a.questionID,
			SelectedAnswer: a.answer,
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	refreshed, _ := f.users.FindByID(user.ID)
	ledgerSum, err := f.attempt.SumPointsByUser(user.ID)
	if err != nil {
		t.Fatalf("sum ledger: %v", err)
	}
	if int64(refreshed.TotalPoints) != ledgerSum {
		t.Fatalf("total points %d diverged from ledger sum %d", refreshed.TotalPoints, ledgerSum)
	}
	if refreshed.TotalPoints != 40 {
		t.Fatalf("expected 40 points, got %d", refreshed.TotalPoints)
	}
}

func TestUserStatsNoAttempts(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)

	stats, err := f.quiz.UserStats(user.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.Accuracy != 0.0 {
		t.Fatalf("expected accuracy 0.0 with no attempts, got %v", stats.Accuracy)
	}
	if stats.TotalAttempts != 0 || stats.CorrectAttempts != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.Rank != 1 {
		t.Fatalf("expected rank 1 for sole user, got %d", stats.Rank)
	}
	if len(stats.QuestionsByCategory) != 0 {
		t.Fatalf("expected empty category map, got %v", stats.QuestionsByCategory)
	}
}

func TestStrictGreaterRank(t *testing.T) {
	f := newFixture(t)
	first := f.createUser(t, "first", 50)
	second := f.createUser(t, "second", 50)
	third := f.createUser(t, "third", 30)

	for _, tc := range []struct {
		user *model.User
		rank int64
	}{
		{first, 1},
		{second, 1},
		{third, 3},
	} {
		stats, err := f.quiz.UserStats(tc.user.ID)
		if err != nil {
			t.Fatalf("stats for %s: %v", tc.user.Username, err)
		}
		if stats.Rank != tc.rank {
			t.Fatalf("expected rank %d for %s, got %d", tc.rank, tc.user.Username, stats.Rank)
		}
	}
}

func TestCategoryBreakdown(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)
	phishing := f.createQuestion(t, "phishing", "easy", 10)
	wifi := f.createQuestion(t, "wifi", "medium", 15)

	// phishing: 答三次对一次; wifi: 答一次全对
	for _, answer := range []string{"right", "wrong", "wrong"} {
		if _, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
			QuestionID:     phishing.ID,
			SelectedAnswer: answer,
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	if _, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
		QuestionID:     wifi.ID,
		SelectedAnswer: "right",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	stats, err := f.quiz.UserStats(user.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	ph, ok := stats.QuestionsByCategory["phishing"]
	if !ok {
		t.Fatalf("missing phishing breakdown: %v", stats.QuestionsByCategory)
	}
	if ph.Attempts != 3 || ph.Correct != 1 || ph.Accuracy != 33.33 {
		t.Fatalf("unexpected phishing breakdown: %+v", ph)
	}

	wf, ok := stats.QuestionsByCategory["wifi"]
	if !ok {
		t.Fatalf("missing wifi breakdown: %v", stats.QuestionsByCategory)
	}
	if wf.Attempts != 1 || wf.Correct != 1 || wf.Accuracy != 100.0 {
		t.Fatalf("unexpected wifi breakdown: %+v", wf)
	}

	if stats.Accuracy != 50.0 {
		t.Fatalf("expected overall accuracy 50.0, got %v", stats.Accuracy)
	}
}

func TestRecentActivity(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "alice", 0)

	var lastQuestion *model.Question
	for i := 0; i < 12; i++ {
		lastQuestion = f.createQuestion(t, "general", "easy", 10)
		if _, err := f.quiz.SubmitAnswer(user.ID, service.SubmitAnswerRequest{
			QuestionID:     lastQuestion.ID,
			SelectedAnswer: "right",
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	stats, err := f.quiz.UserStats(user.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if len(stats.RecentActivity) != 10 {
		t.Fatalf("expected 10 recent rows, got %d", len(stats.RecentActivity))
	}
	if stats.RecentActivity[0].QuestionID != lastQuestion.ID {
		t.Fatalf("expected newest attempt first, got question %d", stats.RecentActivity[0].QuestionID)
	}
}

func TestRandomQuestionsClamp(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		f.createQuestion(t, "mfa", "easy", 10)
	}

	questions, err := f.quiz.RandomQuestions(10, "", "")
	if err != nil {
		t.Fatalf("random questions failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected all 3 matching questions, got %d", len(questions))
	}

	seen := make(map[uint]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d in sample", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRandomQuestionsFilters(t *testing.T) {
	f := newFixture(t)
	f.createQuestion(t, "phishing", "easy", 10)
	f.createQuestion(t, "phishing", "hard", 20)
	f.createQuestion(t, "wifi", "easy", 10)

	questions, err := f.quiz.RandomQuestions(10, "phishing", "hard")
	if err != nil {
		t.Fatalf("random questions failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 filtered question, got %d", len(questions))
	}
	q := questions[0]
	if q.Category != "phishing" || q.Difficulty != "hard" {
		t.Fatalf("filter not applied: %+v", q)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected options in response, got %v", q.Options)
	}
}

func TestRandomQuestionsUniform(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution check in short mode")
	}

	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.createQuestion(t, "general", "easy", 10)
	}

	const trials = 4000
	pairCounts := make(map[[2]uint]int)
	for i := 0; i < trials; i++ {
		questions, err := f.quiz.RandomQuestions(2, "", "")
		if err != nil {
			t.Fatalf("random questions failed: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
		a, b := questions[0].ID, questions[1].ID
		if a > b {
			a, b = b, a
		}
		pairCounts[[2]uint{a, b}]++
	}

	// C(5,2)=10个子集，期望各占400次左右
	if len(pairCounts) != 10 {
		t.Fatalf("expected all 10 subsets to appear, got %d", len(pairCounts))
	}
	for pair, count := range pairCounts {
		if count < 300 || count > 500 {
			t.Fatalf("subset %v frequency %d outside tolerance", pair, count)
		}
	}
}

func TestCategories(t *testing.T) {
	f := newFixture(t)
	f.createQuestion(t, "phishing", "easy", 10)
	f.createQuestion(t, "phishing", "hard", 20)
	f.createQuestion(t, "wifi", "easy", 10)

	categories, err := f.quiz.Categories()
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("expected 2 distinct categories, got %v", categories)
	}
	seen := map[string]bool{}
	for _, c := range categories {
		seen[c] = true
	}
	if !seen["phishing"] || !seen["wifi"] {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestLeaderboardPositionalRanks(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "gold", 100)
	f.createUser(t, "silver1", 90)
	f.createUser(t, "silver2", 90)
	f.createUser(t, "bronze", 80)

	leaderboard, err := f.quiz.Leaderboard(2)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(leaderboard) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(leaderboard))
	}
	if leaderboard[0].Username != "gold" || leaderboard[0].Rank != 1 {
		t.Fatalf("unexpected first entry: %+v", leaderboard[0])
	}
	if leaderboard[1].TotalPoints != 90 || leaderboard[1].Rank != 2 {
		t.Fatalf("unexpected second entry: %+v", leaderboard[1])
	}

	// 同分按id升序：silver1先注册排在前
	full, err := f.quiz.Leaderboard(10)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(full) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(full))
	}
	if full[1].Username != "silver1" || full[2].Username != "silver2" {
		t.Fatalf("tie order not deterministic: %s, %s", full[1].Username, full[2].Username)
	}
	if full[1].Rank != 2 || full[2].Rank != 3 {
		t.Fatalf("positional ranks wrong for tied users: %d, %d", full[1].Rank, full[2].Rank)
	}
}

func TestMyRankUsesStrictGreaterCount(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "gold", 100)
	f.createUser(t, "silver1", 90)
	silver2 := f.createUser(t, "silver2", 90)

	// 榜单位置口径下silver2是第3名，严格大于计数口径下是第2名
	entry, err := f.quiz.MyRankEntry(silver2.ID)
	if err != nil {
		t.Fatalf("my rank failed: %v", err)
	}
	if entry.Rank != 2 {
		t.Fatalf("expected strict-greater rank 2, got %d", entry.Rank)
	}
	if entry.Username != "silver2" || entry.TotalPoints != 90 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}
