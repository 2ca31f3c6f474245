package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	engine           service.AttemptEngineService
}

func NewAdminTestController(adminTestService service.AdminTestService, engine service.AttemptEngineService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, engine: engine}
}

// CreateTest godoc
// @Summary (Admin) Create a new complete test
// @Description Admin creates a test definition with its sections, questions and answer keys in one request. Definitions are immutable once created.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test definition including sections, questions and answer keys"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid definition (e.g., missing key material, duplicate orders)"
// @Failure 409 {object} dto.ErrorResponse "A test with this title already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminTestService.CreateTest(req)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "A test with this title already exists"})
			return
		}
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateTest: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// ApplyManualGrades godoc
// @Summary (Admin) Grade pending-review answers of a completed attempt
// @Description Records reviewer points for essay answers awaiting review and recomputes the attempt's score. Points above the question weight are clamped to the weight.
// @Tags Admin - Grading
// @Accept json
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Param grade_data body dto.ManualGradeBatchDTO true "Reviewer identity and per-question points"
// @Success 200 {object} dto.AttemptResponseDTO "Attempt with its recomputed score"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt is not completed yet"
// @Failure 422 {object} dto.ErrorResponse "Unknown question or answer not awaiting review"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/attempts/{attempt_id}/grades [post]
func (c *AdminTestController) ApplyManualGrades(ctx *gin.Context) {
	attemptID := ctx.Param("attempt_id")

	var req dto.ManualGradeBatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin ApplyManualGrades: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	attempt, err := c.engine.ApplyManualGrades(attemptID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Only completed attempts can be graded"})
		case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrAnswerNotReviewable):
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Str("attemptID", attemptID).Msg("Admin ApplyManualGrades: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to apply grades", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}
