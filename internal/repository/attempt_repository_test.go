package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Test{},
		&model.Section{},
		&model.Question{},
		&model.TestAttempt{},
		&model.Answer{},
		&model.AttemptEvent{},
	))
	// Same partial index the server migration creates.
	require.NoError(t, db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_test_attempts_active "+
			"ON test_attempts (test_id, student_id) WHERE status <> 'completed'",
	).Error)
	return db
}

// seedTest stores a two-question test and returns it with sections loaded.
func seedTest(t *testing.T, db *gorm.DB, title string) *model.Test {
	t.Helper()
	testID := uuid.New().String()
	sectionID := uuid.New().String()

	q1 := model.Question{
		ID:             uuid.New().String(),
		SectionID:      sectionID,
		TestID:         testID,
		Prompt:         "Pick the right option.",
		Type:           model.QuestionTypeMultipleChoice,
		Points:         10,
		OrderInSection: 1,
	}
	require.NoError(t, q1.SetChoices([]string{"opt-a", "opt-b"}))
	correct := "opt-a"
	q1.CorrectOption = &correct

	q2 := model.Question{
		ID:             uuid.New().String(),
		SectionID:      sectionID,
		TestID:         testID,
		Prompt:         "Explain your reasoning.",
		Type:           model.QuestionTypeEssay,
		Points:         10,
		OrderInSection: 2,
	}

	test := &model.Test{
		ID:                testID,
		Title:             title,
		PassingPercentage: 60,
		Sections: []model.Section{
			{
				ID:          sectionID,
				TestID:      testID,
				Title:       "Section 1",
				OrderInTest: 1,
				Questions:   []model.Question{q1, q2},
			},
		},
	}
	require.NoError(t, NewTestRepository(db).Create(test))
	return test
}

func newAttempt(t *testing.T, testID, studentID string, startedAt time.Time) *model.TestAttempt {
	t.Helper()
	attempt := &model.TestAttempt{
		ID:        uuid.New().String(),
		TestID:    testID,
		StudentID: studentID,
		Status:    model.AttemptStatusInProgress,
		StartedAt: startedAt,
	}
	require.NoError(t, attempt.OpenInterval(startedAt))
	return attempt
}

func TestCreateRejectsSecondActiveAttempt(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "Index Test A")
	repo := NewAttemptRepository(db)
	now := time.Now()

	require.NoError(t, repo.Create(newAttempt(t, test.ID, "student-1", now)))

	err := repo.Create(newAttempt(t, test.ID, "student-1", now))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The index is per (test, student): another student is free to start.
	require.NoError(t, repo.Create(newAttempt(t, test.ID, "student-2", now)))
}

func TestCompletedAttemptFreesTheSlot(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "Index Test B")
	repo := NewAttemptRepository(db)
	now := time.Now()

	first := newAttempt(t, test.ID, "student-1", now)
	require.NoError(t, repo.Create(first))

	require.NoError(t, first.CloseInterval(now.Add(time.Minute)))
	completedAt := now.Add(time.Minute)
	first.Status = model.AttemptStatusCompleted
	first.CompletedAt = &completedAt
	require.NoError(t, first.SetScoreSummary(model.ScoreSummary{MaxPoints: 20}))

	ok, err := repo.UpdateIfStatus(first, []string{model.AttemptStatusInProgress, model.AttemptStatusSuspended})
	require.NoError(t, err)
	require.True(t, ok)

	// The slot only covers non-completed attempts.
	require.NoError(t, repo.Create(newAttempt(t, test.ID, "student-1", now.Add(2*time.Minute))))
}

func TestUpdateIfStatusGuardsConcurrentTransitions(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "CAS Test")
	repo := NewAttemptRepository(db)
	now := time.Now()

	attempt := newAttempt(t, test.ID, "student-1", now)
	require.NoError(t, repo.Create(attempt))

	require.NoError(t, attempt.CloseInterval(now.Add(time.Minute)))
	attempt.Status = model.AttemptStatusSuspended

	ok, err := repo.UpdateIfStatus(attempt, []string{model.AttemptStatusInProgress})
	require.NoError(t, err)
	assert.True(t, ok)

	// A second writer that still believes the attempt is in progress loses.
	ok, err = repo.UpdateIfStatus(attempt, []string{model.AttemptStatusInProgress})
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.FindByID(attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AttemptStatusSuspended, stored.Status)
}

func TestAnswerUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "Upsert Test")
	attemptRepo := NewAttemptRepository(db)
	answerRepo := NewAnswerRepository(db)
	now := time.Now()

	attempt := newAttempt(t, test.ID, "student-1", now)
	require.NoError(t, attemptRepo.Create(attempt))

	questionID := test.Sections[0].Questions[0].ID
	wrong := "opt-b"
	first := &model.Answer{
		ID:            uuid.New().String(),
		AttemptID:     attempt.ID,
		QuestionID:    questionID,
		Content:       &wrong,
		SubmittedAt:   now,
		Verdict:       model.VerdictIncorrect,
		PointsAwarded: 0,
	}
	require.NoError(t, answerRepo.Upsert(first))

	right := "opt-a"
	second := &model.Answer{
		ID:            uuid.New().String(),
		AttemptID:     attempt.ID,
		QuestionID:    questionID,
		Content:       &right,
		SubmittedAt:   now.Add(time.Second),
		Verdict:       model.VerdictCorrect,
		PointsAwarded: 10,
	}
	require.NoError(t, answerRepo.Upsert(second))

	rows, err := answerRepo.FindByAttemptID(attempt.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The conflict update keeps the original row identity, and the caller's
	// struct is rewritten to match the stored row.
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, rows[0].Content)
	assert.Equal(t, "opt-a", *rows[0].Content)
	assert.Equal(t, model.VerdictCorrect, rows[0].Verdict)
	assert.Equal(t, 10.0, rows[0].PointsAwarded)
}

func TestSaveManualGrades(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "Grading Test")
	attemptRepo := NewAttemptRepository(db)
	answerRepo := NewAnswerRepository(db)
	now := time.Now()

	attempt := newAttempt(t, test.ID, "student-1", now)
	require.NoError(t, attemptRepo.Create(attempt))

	essayID := test.Sections[0].Questions[1].ID
	content := "A considered essay."
	answer := &model.Answer{
		ID:          uuid.New().String(),
		AttemptID:   attempt.ID,
		QuestionID:  essayID,
		Content:     &content,
		SubmittedAt: now,
		Verdict:     model.VerdictPendingReview,
	}
	require.NoError(t, answerRepo.Upsert(answer))

	points := 7.0
	gradedBy := "reviewer-1"
	gradedAt := now.Add(time.Hour)
	answer.ManualPoints = &points
	answer.GradedBy = &gradedBy
	answer.GradedAt = &gradedAt
	require.NoError(t, attempt.SetScoreSummary(model.ScoreSummary{
		TotalPoints: 17,
		MaxPoints:   20,
		Percentage:  85,
		Passed:      true,
	}))

	require.NoError(t, attemptRepo.SaveManualGrades(attempt, []model.Answer{*answer}))

	stored, err := attemptRepo.FindByIDWithAnswers(attempt.ID)
	require.NoError(t, err)
	require.Len(t, stored.Answers, 1)
	require.NotNil(t, stored.Answers[0].ManualPoints)
	assert.Equal(t, 7.0, *stored.Answers[0].ManualPoints)
	require.NotNil(t, stored.Answers[0].GradedBy)
	assert.Equal(t, "reviewer-1", *stored.Answers[0].GradedBy)

	summary, err := stored.ScoreSummary()
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 85.0, summary.Percentage)
	assert.Equal(t, "Grading Test", stored.Test.Title)
}

func TestFindAllByStudentNewestFirst(t *testing.T) {
	db := newTestDB(t)
	testA := seedTest(t, db, "History Test A")
	testB := seedTest(t, db, "History Test B")
	repo := NewAttemptRepository(db)
	now := time.Now()

	older := newAttempt(t, testA.ID, "student-1", now.Add(-time.Hour))
	older.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, repo.Create(older))

	newer := newAttempt(t, testB.ID, "student-1", now)
	newer.CreatedAt = now
	require.NoError(t, repo.Create(newer))

	attempts, err := repo.FindAllByStudent("student-1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, newer.ID, attempts[0].ID)
	assert.Equal(t, "History Test B", attempts[0].Test.Title)
	assert.Equal(t, older.ID, attempts[1].ID)
}

func TestFindAllWithQuestionCount(t *testing.T) {
	db := newTestDB(t)
	seedTest(t, db, "Counted Test")
	repo := NewTestRepository(db)

	results, err := repo.FindAllWithQuestionCount()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Counted Test", results[0].Title)
	assert.Equal(t, 2, results[0].QuestionCount)
}

func TestFindByIDWithSectionsOrdersQuestions(t *testing.T) {
	db := newTestDB(t)
	test := seedTest(t, db, "Ordered Test")
	repo := NewTestRepository(db)

	stored, err := repo.FindByIDWithSections(test.ID)
	require.NoError(t, err)
	require.Len(t, stored.Sections, 1)
	require.Len(t, stored.Sections[0].Questions, 2)
	assert.Equal(t, 1, stored.Sections[0].Questions[0].OrderInSection)
	assert.Equal(t, 2, stored.Sections[0].Questions[1].OrderInSection)
	assert.Equal(t, 2, stored.QuestionCount())
}
