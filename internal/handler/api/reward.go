package api

import (
	"errors"
	"net/http"
	"strconv"

	"volunteer-hub/internal/domain/reward"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/handler/httperr"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RewardHandler struct {
	cmds        commands.RedemptionCommands
	rewardQ     queries.RewardQueries
	redemptionQ queries.RedemptionQueries
}

func NewRewardHandler(cmds commands.RedemptionCommands, rewardQ queries.RewardQueries, redemptionQ queries.RedemptionQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, rewardQ: rewardQ, redemptionQ: redemptionQ}
}

// @Summary List rewards
// @Description Active rewards catalog
// @Tags rewards
// @Produce json
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.RewardResponse
// @Router /rewards [get]
func (h *RewardHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.rewardQ.ListActive(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rewards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardViews(views))
}

// @Summary Redeem reward
// @Description Spend points to redeem a reward and receive a code
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reward ID"
// @Success 201 {object} resdto.RedeemResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rewards/{id}/redeem [post]
func (h *RewardHandler) Redeem(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), rewardID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRewardNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reward not found", nil)
		case errors.Is(err, commands.ErrRewardUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reward unavailable", nil)
		case errors.Is(err, commands.ErrInsufficientPoints):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient points", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRedeemResult(result))
}

// @Summary List my redemptions
// @Description Redemptions of the authenticated user, newest first
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.RedemptionResponse
// @Router /redemptions [get]
func (h *RewardHandler) ListRedemptions(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, err := h.redemptionQ.ListByUser(c.Request.Context(), actorID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list redemptions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionViews(views))
}

// @Summary Mark redemption used
// @Description Stamp a redemption code as used, exactly once
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param code path string true "Redemption code"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redemptions/{code}/use [post]
func (h *RewardHandler) MarkUsed(c *gin.Context) {
	code := c.Param("code")
	if len(code) != reward.CodeLength {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid code", nil)
		return
	}

	if err := h.cmds.MarkUsed(c.Request.Context(), code); err != nil {
		switch {
		case errors.Is(err, commands.ErrRedemptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption not found", nil)
		case errors.Is(err, reward.ErrCodeAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Code already used", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
