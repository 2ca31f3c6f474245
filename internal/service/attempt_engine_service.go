package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/events"
	"github.com/lshigami/Caracal/internal/model"
	"github.com/lshigami/Caracal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptEngineService is the public surface of the attempt subsystem. It
// enforces the one-active-attempt-per-student-per-test invariant, mediates
// between the lifecycle, validator and score services, and emits lifecycle
// events for downstream consumers.
type AttemptEngineService interface {
	Start(testID string, req dto.AttemptStartDTO) (*dto.AttemptResponseDTO, error)
	SubmitAnswer(attemptID string, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error)
	Suspend(attemptID string) (*dto.AttemptResponseDTO, error)
	Resume(attemptID string) (*dto.AttemptResponseDTO, error)
	Complete(attemptID string) (*dto.AttemptResponseDTO, error)
	GetAttempt(attemptID string) (*dto.AttemptResponseDTO, error)
	ListAttemptsByStudent(studentID string) ([]dto.AttemptSummaryDTO, error)
	ListAttemptsByTest(testID string) ([]dto.AttemptSummaryDTO, error)
	ApplyManualGrades(attemptID string, req dto.ManualGradeBatchDTO) (*dto.AttemptResponseDTO, error)
}

type attemptEngineService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	lifecycle    AttemptLifecycleService
	validator    AnswerValidatorService
	scorer       ScoreService
	emitter      events.Emitter
}

func NewAttemptEngineService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	lifecycle AttemptLifecycleService,
	validator AnswerValidatorService,
	scorer ScoreService,
	emitter events.Emitter,
) AttemptEngineService {
	return &attemptEngineService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		lifecycle:    lifecycle,
		validator:    validator,
		scorer:       scorer,
		emitter:      emitter,
	}
}

// Start opens a new attempt. The existence check and the insert are a
// single atomic step: the partial unique index over non-completed attempts
// rejects a concurrent duplicate, so two racing starts for the same
// (test, student) pair yield exactly one success.
func (s *attemptEngineService) Start(testID string, req dto.AttemptStartDTO) (*dto.AttemptResponseDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		log.Error().Err(err).Str("testID", testID).Msg("Start: Failed to load test")
		return nil, fmt.Errorf("loading test %s: %w", testID, err)
	}

	now := time.Now()
	attempt, err := s.lifecycle.Create(testID, req.StudentID, now)
	if err != nil {
		return nil, err
	}

	if err := s.attemptRepo.Create(attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateActiveAttempt
		}
		log.Error().Err(err).Str("testID", testID).Str("studentID", req.StudentID).Msg("Start: Failed to persist attempt")
		return nil, fmt.Errorf("creating attempt: %w", err)
	}

	s.emitter.Publish(events.Event{
		Type:       model.EventAttemptStarted,
		AttemptID:  attempt.ID,
		TestID:     attempt.TestID,
		StudentID:  attempt.StudentID,
		OccurredAt: now,
	})

	resp, err := s.attemptResponse(attempt, now)
	if err != nil {
		return nil, err
	}
	resp.TestTitle = test.Title
	return resp, nil
}

// SubmitAnswer upserts the single answer row for (attempt, question) and
// validates it eagerly so the caller gets a live verdict. Scoring stays
// open until Complete.
func (s *attemptEngineService) SubmitAnswer(attemptID string, req dto.AnswerSubmitDTO) (*dto.AnswerResponseDTO, error) {
	attempt, err := s.loadAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == model.AttemptStatusCompleted {
		return nil, ErrAttemptAlreadyCompleted
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownQuestion
		}
		log.Error().Err(err).Str("questionID", req.QuestionID).Msg("SubmitAnswer: Failed to load question")
		return nil, fmt.Errorf("loading question %s: %w", req.QuestionID, err)
	}
	if question.TestID != attempt.TestID {
		return nil, ErrUnknownQuestion
	}

	result := s.validator.Validate(question, req.Content)

	answer := &model.Answer{
		ID:            uuid.New().String(),
		AttemptID:     attempt.ID,
		QuestionID:    question.ID,
		Content:       req.Content,
		SubmittedAt:   time.Now(),
		Verdict:       result.Verdict,
		PointsAwarded: result.PointsAwarded,
	}
	if err := s.answerRepo.Upsert(answer); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Str("questionID", question.ID).Msg("SubmitAnswer: Failed to upsert answer")
		return nil, fmt.Errorf("storing answer: %w", err)
	}

	resp := answerDTO(answer)
	return &resp, nil
}

func (s *attemptEngineService) Suspend(attemptID string) (*dto.AttemptResponseDTO, error) {
	return s.applyTransition(attemptID, model.EventAttemptSuspended,
		[]string{model.AttemptStatusInProgress}, s.lifecycle.Suspend)
}

func (s *attemptEngineService) Resume(attemptID string) (*dto.AttemptResponseDTO, error) {
	return s.applyTransition(attemptID, model.EventAttemptResumed,
		[]string{model.AttemptStatusSuspended}, s.lifecycle.Resume)
}

// Complete scores the attempt over every question of the test, seals it,
// and emits the completion event.
func (s *attemptEngineService) Complete(attemptID string) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.loadAttemptWithAnswers(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == model.AttemptStatusCompleted {
		return nil, ErrAttemptAlreadyCompleted
	}

	questions, err := s.questionRepo.FindByTestID(attempt.TestID)
	if err != nil {
		log.Error().Err(err).Str("testID", attempt.TestID).Msg("Complete: Failed to load questions")
		return nil, fmt.Errorf("loading questions for test %s: %w", attempt.TestID, err)
	}

	summary := s.scorer.Aggregate(questions, attempt.Answers, attempt.Test.PassingPercentage)

	now := time.Now()
	if err := s.lifecycle.Complete(attempt, summary, now); err != nil {
		return nil, err
	}

	ok, err := s.attemptRepo.UpdateIfStatus(attempt, []string{model.AttemptStatusInProgress, model.AttemptStatusSuspended})
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Complete: Failed to persist completion")
		return nil, fmt.Errorf("completing attempt %s: %w", attemptID, err)
	}
	if !ok {
		return nil, s.concurrentTransitionError(attemptID)
	}

	s.emitter.Publish(events.Event{
		Type:       model.EventAttemptCompleted,
		AttemptID:  attempt.ID,
		TestID:     attempt.TestID,
		StudentID:  attempt.StudentID,
		OccurredAt: now,
		Score:      &summary,
	})

	return s.attemptResponse(attempt, now)
}

func (s *attemptEngineService) GetAttempt(attemptID string) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.loadAttemptWithAnswers(attemptID)
	if err != nil {
		return nil, err
	}
	return s.attemptResponse(attempt, time.Now())
}

func (s *attemptEngineService) ListAttemptsByStudent(studentID string) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("ListAttemptsByStudent: Failed to load attempts")
		return nil, fmt.Errorf("listing attempts for student %s: %w", studentID, err)
	}
	return s.attemptSummaries(attempts)
}

func (s *attemptEngineService) ListAttemptsByTest(testID string) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByTest(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("ListAttemptsByTest: Failed to load attempts")
		return nil, fmt.Errorf("listing attempts for test %s: %w", testID, err)
	}
	return s.attemptSummaries(attempts)
}

// ApplyManualGrades records reviewer points for pending-review answers of a
// completed attempt and recomputes the stored score from scratch. This is
// the only path by which a completed attempt's score may change.
func (s *attemptEngineService) ApplyManualGrades(attemptID string, req dto.ManualGradeBatchDTO) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.loadAttemptWithAnswers(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != model.AttemptStatusCompleted {
		return nil, ErrInvalidTransition
	}

	questions, err := s.questionRepo.FindByTestID(attempt.TestID)
	if err != nil {
		log.Error().Err(err).Str("testID", attempt.TestID).Msg("ApplyManualGrades: Failed to load questions")
		return nil, fmt.Errorf("loading questions for test %s: %w", attempt.TestID, err)
	}
	questionByID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		questionByID[questions[i].ID] = &questions[i]
	}
	answerByQuestion := make(map[string]*model.Answer, len(attempt.Answers))
	for i := range attempt.Answers {
		answerByQuestion[attempt.Answers[i].QuestionID] = &attempt.Answers[i]
	}

	now := time.Now()
	graded := make([]model.Answer, 0, len(req.Grades))
	for _, grade := range req.Grades {
		answer, ok := answerByQuestion[grade.QuestionID]
		if !ok {
			return nil, ErrUnknownQuestion
		}
		if answer.Verdict != model.VerdictPendingReview {
			return nil, ErrAnswerNotReviewable
		}
		question := questionByID[grade.QuestionID]
		points := grade.Points
		if question != nil && points > question.Points {
			log.Warn().Str("questionID", grade.QuestionID).Float64("points", points).Float64("weight", question.Points).Msg("ApplyManualGrades: Clamping grade to question weight")
			points = question.Points
		}
		gradedBy := req.GradedBy
		gradedAt := now
		answer.ManualPoints = &points
		answer.GradedBy = &gradedBy
		answer.GradedAt = &gradedAt
		graded = append(graded, *answer)
	}

	summary := s.scorer.Aggregate(questions, attempt.Answers, attempt.Test.PassingPercentage)
	if err := attempt.SetScoreSummary(summary); err != nil {
		return nil, err
	}

	if err := s.attemptRepo.SaveManualGrades(attempt, graded); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("ApplyManualGrades: Failed to persist grades")
		return nil, fmt.Errorf("saving manual grades for attempt %s: %w", attemptID, err)
	}

	return s.attemptResponse(attempt, now)
}

// applyTransition is the shared suspend/resume path: mutate in memory via
// the lifecycle service, then persist with a conditional write on the
// previous status so a racing transition cannot be overwritten.
func (s *attemptEngineService) applyTransition(
	attemptID, eventType string,
	fromStatuses []string,
	mutate func(*model.TestAttempt, time.Time) error,
) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.loadAttempt(attemptID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := mutate(attempt, now); err != nil {
		return nil, err
	}

	ok, err := s.attemptRepo.UpdateIfStatus(attempt, fromStatuses)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Str("to", attempt.Status).Msg("Failed to persist status transition")
		return nil, fmt.Errorf("persisting transition for attempt %s: %w", attemptID, err)
	}
	if !ok {
		return nil, s.concurrentTransitionError(attemptID)
	}

	s.emitter.Publish(events.Event{
		Type:       eventType,
		AttemptID:  attempt.ID,
		TestID:     attempt.TestID,
		StudentID:  attempt.StudentID,
		OccurredAt: now,
	})

	return s.attemptResponse(attempt, now)
}

// concurrentTransitionError re-reads the row a conditional write skipped to
// report what actually blocked the transition.
func (s *attemptEngineService) concurrentTransitionError(attemptID string) error {
	current, err := s.attemptRepo.FindByID(attemptID)
	if err == nil && current.Status == model.AttemptStatusCompleted {
		return ErrAttemptAlreadyCompleted
	}
	return ErrInvalidTransition
}

func (s *attemptEngineService) loadAttempt(attemptID string) (*model.TestAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Failed to load attempt")
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}
	return attempt, nil
}

func (s *attemptEngineService) loadAttemptWithAnswers(attemptID string) (*model.TestAttempt, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Failed to load attempt with answers")
		return nil, fmt.Errorf("loading attempt %s: %w", attemptID, err)
	}
	return attempt, nil
}

func (s *attemptEngineService) attemptResponse(attempt *model.TestAttempt, now time.Time) (*dto.AttemptResponseDTO, error) {
	elapsed, err := attempt.ElapsedSeconds(now)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attempt.ID).Msg("Failed to compute elapsed time")
		return nil, fmt.Errorf("computing elapsed time for attempt %s: %w", attempt.ID, err)
	}
	summary, err := attempt.ScoreSummary()
	if err != nil {
		return nil, err
	}

	resp := &dto.AttemptResponseDTO{
		ID:             attempt.ID,
		TestID:         attempt.TestID,
		TestTitle:      attempt.Test.Title,
		StudentID:      attempt.StudentID,
		Status:         attempt.Status,
		StartedAt:      attempt.StartedAt,
		CompletedAt:    attempt.CompletedAt,
		ElapsedSeconds: elapsed,
	}
	if summary != nil {
		score := dto.ScoreDTO(*summary)
		resp.Score = &score
	}
	for i := range attempt.Answers {
		resp.Answers = append(resp.Answers, answerDTO(&attempt.Answers[i]))
	}
	return resp, nil
}

func (s *attemptEngineService) attemptSummaries(attempts []model.TestAttempt) ([]dto.AttemptSummaryDTO, error) {
	now := time.Now()
	var dtos []dto.AttemptSummaryDTO
	for i := range attempts {
		attempt := &attempts[i]
		elapsed, err := attempt.ElapsedSeconds(now)
		if err != nil {
			log.Error().Err(err).Str("attemptID", attempt.ID).Msg("Skipping attempt with unreadable intervals")
			continue
		}
		summary, err := attempt.ScoreSummary()
		if err != nil {
			log.Error().Err(err).Str("attemptID", attempt.ID).Msg("Skipping attempt with unreadable score")
			continue
		}

		item := dto.AttemptSummaryDTO{
			ID:             attempt.ID,
			TestID:         attempt.TestID,
			TestTitle:      attempt.Test.Title,
			StudentID:      attempt.StudentID,
			Status:         attempt.Status,
			StartedAt:      attempt.StartedAt,
			CompletedAt:    attempt.CompletedAt,
			ElapsedSeconds: elapsed,
		}
		if summary != nil {
			score := dto.ScoreDTO(*summary)
			item.Score = &score
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// answerDTO hides the zero-points placeholder while an answer is awaiting
// review: PointsAwarded is null until a verdict or a manual grade fixes it.
func answerDTO(answer *model.Answer) dto.AnswerResponseDTO {
	var out dto.AnswerResponseDTO
	if err := copier.Copy(&out, answer); err != nil {
		log.Error().Err(err).Str("answerID", answer.ID).Msg("Failed to copy answer to DTO")
	}
	if answer.AwaitingReview() {
		out.PointsAwarded = nil
	} else {
		points := answer.EffectivePoints()
		out.PointsAwarded = &points
	}
	return out
}
