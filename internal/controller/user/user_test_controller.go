package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
}

func NewUserTestController(userTestService service.UserTestService) *UserTestController {
	return &UserTestController{userTestService: userTestService}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get a list of tests with their question counts and passing thresholds.
// @Tags User - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		log.Error().Err(err).Msg("User GetAllTests: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve tests", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get full details of a test, including its sections and questions, for a student about to start an attempt. Answer keys are never included.
// @Tags User - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID := ctx.Param("test_id")

	testDetails, err := c.userTestService.GetTestDetails(testID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", testID).Msg("User GetTestDetails: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve test details", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}
