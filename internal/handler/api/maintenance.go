package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	maintenance usecase.MaintenanceCommands
}

func NewMaintenanceHandler(maintenance usecase.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// @Summary Schedule maintenance
// @Description Claim a maintenance window on a court; any overlap rejects the whole window
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleMaintenanceRequest true "Maintenance request"
// @Success 201 {object} resdto.ScheduleMaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /maintenance [post]
func (h *MaintenanceHandler) ScheduleMaintenance(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.ScheduleMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput(actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.maintenance.Schedule(c.Request.Context(), input)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid maintenance request", nil)
		case errs.Is(err, usecase.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
		case errs.Is(err, usecase.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Court belongs to another owner", nil)
		case errs.Is(err, usecase.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Maintenance window conflicts with existing claims",
				gin.H{"conflicts": conflictDetail(err)})
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromScheduleMaintenanceResult(result))
}

// @Summary Cancel maintenance
// @Description Remove a maintenance schedule
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance schedule ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) CancelMaintenance(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid maintenance ID format", nil)
		return
	}

	if err := h.maintenance.Cancel(c.Request.Context(), id, actor); err != nil {
		switch {
		case errs.Is(err, usecase.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Maintenance schedule not found", nil)
		case errs.Is(err, usecase.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Court belongs to another owner", nil)
		case errs.Is(err, usecase.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
