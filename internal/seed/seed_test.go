package seed

import (
	"path/filepath"
	"testing"

	"cyber_quiz_backend/internal/model"
	"cyber_quiz_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedQuestionsIdempotent(t *testing.T) {
	db := newSeedDB(t)

	inserted, err := SeedQuestions(db)
	if err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if inserted != len(Questions) {
		t.Fatalf("expected %d inserted, got %d", len(Questions), inserted)
	}

	// 二次执行不应新增任何行
	inserted, err = SeedQuestions(db)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected 0 inserted on rerun, got %d", inserted)
	}

	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if count != int64(len(Questions)) {
		t.Fatalf("expected %d questions, got %d", len(Questions), count)
	}
}

func TestSeedDataIsWellFormed(t *testing.T) {
	db := newSeedDB(t)
	if _, err := SeedQuestions(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var questions []model.Question
	if err := db.Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}

	for _, q := range questions {
		options := q.OptionList()
		if len(options) < 2 {
			t.Fatalf("question %d: needs at least two options, got %d", q.ID, len(options))
		}
		if !containsOption(options, q.CorrectAnswer) {
			t.Fatalf("question %d: correct answer %q not among options", q.ID, q.CorrectAnswer)
		}
		if q.PointsValue <= 0 {
			t.Fatalf("question %d: non-positive points value %d", q.ID, q.PointsValue)
		}
		if q.Category == "" || q.Difficulty == "" {
			t.Fatalf("question %d: missing category or difficulty", q.ID)
		}
	}
}

func TestSeedRejectsBadCorrectAnswer(t *testing.T) {
	if containsOption([]string{"a", "b"}, "c") {
		t.Fatal("containsOption matched a missing answer")
	}
	if !containsOption([]string{"a", "b"}, "b") {
		t.Fatal("containsOption missed a present answer")
	}
}
