package api

import (
	"errors"
	"net/http"
	"strconv"

	"volunteer-hub/internal/domain/enrollment"
	reqdto "volunteer-hub/internal/handler/dto/request"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/handler/httperr"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	cmds commands.EnrollmentCommands
	q    queries.ApplicationQueries
}

func NewApplicationHandler(cmds commands.EnrollmentCommands, q queries.ApplicationQueries) *ApplicationHandler {
	return &ApplicationHandler{cmds: cmds, q: q}
}

// @Summary Apply to opportunity
// @Description Create a pending application for an open opportunity
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Opportunity ID"
// @Param request body reqdto.ApplyRequest true "Apply request"
// @Success 201 {object} resdto.ApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /opportunities/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	opportunityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Apply(c.Request.Context(), commands.ApplyRequest{
		OpportunityID: opportunityID,
		Message:       req.GetMessage(),
	}, actorID)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), result.ApplicationID, actorID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load application", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromApplicationView(view))
}

// @Summary List applications for opportunity
// @Description Review queue for the opportunity's promoter
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Opportunity ID"
// @Success 200 {array} resdto.ApplicationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /opportunities/{id}/applications [get]
func (h *ApplicationHandler) ListForOpportunity(c *gin.Context) {
	opportunityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	views, err := h.q.ListByOpportunity(c.Request.Context(), opportunityID, actorID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOpportunityNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Opportunity not found", nil)
		case errors.Is(err, queries.ErrApplicationAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list applications", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplicationViews(views))
}

// @Summary List my applications
// @Description Applications submitted by the authenticated volunteer
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.ApplicationResponse
// @Router /applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, err := h.q.ListByVolunteer(c.Request.Context(), actorID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list applications", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplicationViews(views))
}

// @Summary Decide on application
// @Description Approve or reject a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.DecisionRequest true "Decision request"
// @Success 200 {object} resdto.ApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications/{id}/decision [post]
func (h *ApplicationHandler) Decide(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	decision, err := enrollment.NewDecision(req.Decision)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid decision", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Decide(c.Request.Context(), applicationID, decision, actorID, role.String()); err != nil {
		h.abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), applicationID, actorID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load application", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplicationView(view))
}

// @Summary Withdraw application
// @Description Cancel own pending or approved application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications/{id}/withdraw [post]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Withdraw(c.Request.Context(), applicationID, actorID); err != nil {
		h.abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ApplicationHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOpportunityNotFound),
		errors.Is(err, commands.ErrApplicationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrNotOwner),
		errors.Is(err, commands.ErrNotApplicant):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed", nil)
	case errors.Is(err, commands.ErrAlreadyApplied),
		errors.Is(err, commands.ErrOpportunityNotOpen),
		errors.Is(err, commands.ErrNoSpotsAvailable),
		errors.Is(err, enrollment.ErrNotPending),
		errors.Is(err, enrollment.ErrNotWithdrawable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting application state", nil)
	case errors.Is(err, enrollment.ErrMessageTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
