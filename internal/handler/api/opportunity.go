package api

import (
	"errors"
	"net/http"
	"strconv"

	"volunteer-hub/internal/domain/opportunity"
	reqdto "volunteer-hub/internal/handler/dto/request"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/handler/httperr"
	"volunteer-hub/internal/handler/middleware"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OpportunityHandler struct {
	cmds commands.OpportunityCommands
	q    queries.OpportunityQueries
}

func NewOpportunityHandler(cmds commands.OpportunityCommands, q queries.OpportunityQueries) *OpportunityHandler {
	return &OpportunityHandler{cmds: cmds, q: q}
}

// @Summary Create opportunity
// @Description Create a new opportunity in draft status
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOpportunityRequest true "Create opportunity request"
// @Success 201 {object} resdto.OpportunityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /opportunities [post]
func (h *OpportunityHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create opportunity failed", nil)
		return
	}

	view, err := h.getView(c, result.OpportunityID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load opportunity", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOpportunityView(view))
}

// @Summary Publish opportunity
// @Description Move a draft opportunity to open
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Opportunity ID"
// @Success 200 {object} resdto.OpportunityResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /opportunities/{id}/publish [post]
func (h *OpportunityHandler) Publish(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actorID uuid.UUID, role string) error {
		return h.cmds.Publish(ctx.Request.Context(), id, actorID, role)
	})
}

// @Summary Cancel opportunity
// @Description Cancel an opportunity that has not started
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Opportunity ID"
// @Success 200 {object} resdto.OpportunityResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /opportunities/{id}/cancel [post]
func (h *OpportunityHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, id, actorID uuid.UUID, role string) error {
		return h.cmds.Cancel(ctx.Request.Context(), id, actorID, role)
	})
}

// @Summary Update opportunity
// @Description Edit an opportunity while it is editable
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Opportunity ID"
// @Param request body reqdto.UpdateOpportunityRequest true "Update opportunity request"
// @Success 200 {object} resdto.OpportunityResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /opportunities/{id} [patch]
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, actorID, role, ok := h.pathAndActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand(), actorID, role); err != nil {
		h.abortCommandError(c, err)
		return
	}

	view, err := h.getView(c, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load opportunity", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpportunityView(view))
}

// @Summary Get opportunity
// @Description Get an opportunity by ID
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} resdto.OpportunityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role.String())
	if err != nil {
		if errors.Is(err, queries.ErrOpportunityNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load opportunity", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpportunityView(view))
}

// @Summary List opportunities
// @Description List published opportunities, newest first
// @Tags opportunities
// @Produce json
// @Param status query string false "Filter by status"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OpportunityListResponse
// @Failure 400 {object} map[string]string
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}
	var after *queries.Cursor
	if a := c.Query("after"); a != "" {
		after = &queries.Cursor{After: a}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.List(c.Request.Context(), status, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to list opportunities", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpportunityList(items, next))
}

// @Summary List my opportunities
// @Description List opportunities created by the authenticated promoter, newest first
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OpportunityListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/me/opportunities [get]
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var after *queries.Cursor
	if a := c.Query("after"); a != "" {
		after = &queries.Cursor{After: a}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.ListByPromoter(c.Request.Context(), actorID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to list opportunities", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpportunityList(items, next))
}

func (h *OpportunityHandler) transition(c *gin.Context, fn func(*gin.Context, uuid.UUID, uuid.UUID, string) error) {
	id, actorID, role, ok := h.pathAndActor(c)
	if !ok {
		return
	}
	if err := fn(c, id, actorID, role); err != nil {
		h.abortCommandError(c, err)
		return
	}

	view, err := h.getView(c, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load opportunity", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOpportunityView(view))
}

func (h *OpportunityHandler) pathAndActor(c *gin.Context) (uuid.UUID, uuid.UUID, string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, actorID, role.String(), true
}

func (h *OpportunityHandler) getView(c *gin.Context, id uuid.UUID) (*queries.OpportunityView, error) {
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	return h.q.GetByID(c.Request.Context(), id, actorID, role.String())
}

func (h *OpportunityHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOpportunityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Opportunity not found", nil)
	case errors.Is(err, commands.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed", nil)
	case errors.Is(err, opportunity.ErrInvalidStateTransition),
		errors.Is(err, opportunity.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid state for this operation", nil)
	case errors.Is(err, opportunity.ErrInvalidCapacityReduction),
		errors.Is(err, opportunity.ErrInvalidDateRange),
		errors.Is(err, opportunity.ErrEmptyTitle),
		errors.Is(err, opportunity.ErrInvalidCapacity),
		errors.Is(err, opportunity.ErrNegativePointsReward):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
