package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Caracal/internal/dto"
	"github.com/lshigami/Caracal/internal/service"
	"github.com/rs/zerolog/log"
)

// EventController exposes the attempt event log for audit and debugging.
type EventController struct {
	eventService service.EventService
}

func NewEventController(eventService service.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetAttemptEvents godoc
// @Summary Get the lifecycle event log of an attempt
// @Description Retrieve the recorded lifecycle events of an attempt in order of occurrence. Events are written asynchronously, so the latest transition may lag briefly.
// @Tags Events
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {array} dto.EventResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id}/events [get]
func (c *EventController) GetAttemptEvents(ctx *gin.Context) {
	attemptID := ctx.Param("attempt_id")

	events, err := c.eventService.ListByAttempt(attemptID)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Attempt not found"})
			return
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("GetAttemptEvents: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempt events", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, events)
}
