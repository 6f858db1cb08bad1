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
)

type BlockingHandler struct {
	blocking usecase.BlockingCommands
}

func NewBlockingHandler(blocking usecase.BlockingCommands) *BlockingHandler {
	return &BlockingHandler{blocking: blocking}
}

// @Summary Block slots
// @Description Block a set of slots on a court; each slot is processed independently
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockSlotsRequest true "Block request"
// @Success 200 {object} resdto.BulkResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blocks [post]
func (h *BlockingHandler) BlockSlots(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.BlockSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput(actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.blocking.Block(c.Request.Context(), input)
	if err != nil {
		respondBlockingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBulkResult(result))
}

// @Summary Unblock slots
// @Description Remove blocks from a set of slots on a court
// @Tags blocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UnblockSlotsRequest true "Unblock request"
// @Success 200 {object} resdto.BulkResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /blocks/unblock [post]
func (h *BlockingHandler) UnblockSlots(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.UnblockSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput(actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.blocking.Unblock(c.Request.Context(), input)
	if err != nil {
		respondBlockingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBulkResult(result))
}

func respondBlockingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid block request", nil)
	case errs.Is(err, usecase.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
	case errs.Is(err, usecase.ErrAccessDenied):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Court belongs to another owner", nil)
	case errs.Is(err, usecase.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation store unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
