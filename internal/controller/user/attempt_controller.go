package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	engine service.AttemptEngineService
}

func NewAttemptController(engine service.AttemptEngineService) *AttemptController {
	return &AttemptController{engine: engine}
}

// attemptErrorStatus translates engine errors into HTTP statuses. Conflicts
// cover everything that was legal for some other state of the attempt.
func attemptErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrTestNotFound), errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateActiveAttempt),
		errors.Is(err, service.ErrAttemptAlreadyCompleted),
		errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrAnswerNotReviewable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (c *AttemptController) respondAttemptError(ctx *gin.Context, err error, msg string) {
	status := attemptErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
		ctx.JSON(status, dto.ErrorResponse{Message: msg, Details: []string{err.Error()}})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// StartAttempt godoc
// @Summary (User) Start a new attempt on a test
// @Description Opens a new in-progress attempt for a student. A student can hold at most one non-completed attempt per test; a second start is rejected with a conflict.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param attempt_data body dto.AttemptStartDTO true "Student starting the attempt"
// @Success 201 {object} dto.AttemptResponseDTO "Attempt started"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Student already has an active attempt on this test"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	var req dto.AttemptStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User StartAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.engine.Start(testID, req)
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to start attempt")
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// SubmitAnswer godoc
// @Summary (User) Submit an answer within an attempt
// @Description Stores the answer for one question of an open attempt and returns its live verdict. Resubmitting the same question replaces the previous answer.
// @Tags User - Attempts
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Param answer_data body dto.AnswerSubmitDTO true "Answer content for one question"
// @Success 200 {object} dto.AnswerResponseDTO "Stored answer with its verdict"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt is already completed"
// @Failure 422 {object} dto.ErrorResponse "Question does not belong to the attempt's test"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/answers [post]
func (c *AttemptController) SubmitAnswer(ctx *gin.Context) {
	attemptID := ctx.Param("attempt_id")

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.engine.SubmitAnswer(attemptID, req)
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, answer)
}

// SuspendAttempt godoc
// @Summary (User) Suspend an in-progress attempt
// @Description Pauses the clock on an in-progress attempt. Only in-progress attempts can be suspended.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponseDTO "Suspended attempt"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/suspend [post]
func (c *AttemptController) SuspendAttempt(ctx *gin.Context) {
	attempt, err := c.engine.Suspend(ctx.Param("attempt_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to suspend attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// ResumeAttempt godoc
// @Summary (User) Resume a suspended attempt
// @Description Restarts the clock on a suspended attempt. Only suspended attempts can be resumed.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponseDTO "Resumed attempt"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not suspended"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/resume [post]
func (c *AttemptController) ResumeAttempt(ctx *gin.Context) {
	attempt, err := c.engine.Resume(ctx.Param("attempt_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to resume attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// CompleteAttempt godoc
// @Summary (User) Complete an attempt and compute its score
// @Description Seals the attempt, scores every question of the test (unanswered questions count as wrong) and returns the final state. Scores with unreviewed essay answers are marked provisional.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponseDTO "Completed attempt with its score"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt is already completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/complete [post]
func (c *AttemptController) CompleteAttempt(ctx *gin.Context) {
	attempt, err := c.engine.Complete(ctx.Param("attempt_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to complete attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetAttempt godoc
// @Summary (User) Get the full state of an attempt
// @Description Retrieve one attempt with its answers, elapsed active time and score, if completed.
// @Tags User - Attempts
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.engine.GetAttempt(ctx.Param("attempt_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to retrieve attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// GetTestAttempts godoc
// @Summary (User) List attempts on a test
// @Description Retrieve summaries of every attempt made on a test, across students.
// @Tags User - Attempts
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/attempts [get]
func (c *AttemptController) GetTestAttempts(ctx *gin.Context) {
	attempts, err := c.engine.ListAttemptsByTest(ctx.Param("test_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to list attempts for test")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetStudentAttempts godoc
// @Summary (User) List attempts by a student
// @Description Retrieve summaries of every attempt a student has made, across tests.
// @Tags User - Attempts
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/attempts [get]
func (c *AttemptController) GetStudentAttempts(ctx *gin.Context) {
	attempts, err := c.engine.ListAttemptsByStudent(ctx.Param("student_id"))
	if err != nil {
		c.respondAttemptError(ctx, err, "Failed to list attempts for student")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
