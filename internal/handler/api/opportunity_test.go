//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"volunteer-hub/internal/domain/opportunity"
	"volunteer-hub/internal/domain/user"
	"volunteer-hub/internal/handler/api"
	resdto "volunteer-hub/internal/handler/dto/response"
	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"
	"volunteer-hub/tests/common/builder"
	"volunteer-hub/tests/common/httptest"
	"volunteer-hub/tests/common/testutil"
	commandsmock "volunteer-hub/tests/mock/commands"
	queriesmock "volunteer-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OpportunityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOpportunityCommands
	mockQueries  *queriesmock.MockOpportunityQueries
	handler      *api.OpportunityHandler
	actorID      uuid.UUID
}

// fakeAuth injects the authenticated actor the way AuthMiddleware would.
func fakeAuth(actorID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Set("user_role", role)
	}
}

func (s *OpportunityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOpportunityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOpportunityQueries(s.mockCtrl)
	s.handler = api.NewOpportunityHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	auth := fakeAuth(s.actorID, user.RolePromoter)
	s.router.GET("/opportunities", s.handler.List)
	s.router.GET("/opportunities/:id", s.handler.Get)
	s.router.POST("/opportunities", auth, s.handler.Create)
	s.router.PATCH("/opportunities/:id", auth, s.handler.Update)
	s.router.POST("/opportunities/:id/publish", auth, s.handler.Publish)
	s.router.POST("/opportunities/:id/cancel", auth, s.handler.Cancel)
	s.router.GET("/users/me/opportunities", auth, s.handler.ListMine)
}

func (s *OpportunityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOpportunityHandlerSuite(t *testing.T) {
	suite.Run(t, new(OpportunityHandlerTestSuite))
}

func (s *OpportunityHandlerTestSuite) TestCreate() {
	url := "/opportunities"
	reqBody := builder.NewOpportunityBuilder().BuildCreateRequestDTO()
	view := builder.NewOpportunityBuilder().BuildViewQuery()

	s.Run("success: returns 201 with the created draft", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actorID).
			Return(&commands.CreateOpportunityResult{OpportunityID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, "promoter").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OpportunityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "missing start date", mutate: testutil.Field("start_date", nil)},
			{name: "missing end date", mutate: testutil.Field("end_date", nil)},
			{name: "max volunteers below 1", mutate: testutil.Field("max_volunteers", 0)},
			{name: "negative points reward", mutate: testutil.Field("points_reward", -1)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when the domain rejects the draft", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, opportunity.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OpportunityHandlerTestSuite) TestPublish() {
	id := uuid.New()
	url := "/opportunities/" + id.String() + "/publish"
	view := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
		o.Status = "open"
	}).BuildViewQuery()

	s.Run("success: returns 200 with the opened opportunity", func() {
		s.mockCommands.EXPECT().Publish(gomock.Any(), id, s.actorID, "promoter").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actorID, "promoter").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.OpportunityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("open", response.Status)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/opportunities/not-a-uuid/publish", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "opportunity not found",
				commandsError:  commands.ErrOpportunityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Opportunity not found",
			},
			{
				name:           "actor does not own the opportunity",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed",
			},
			{
				name:           "not a draft",
				commandsError:  opportunity.ErrInvalidStateTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid state for this operation",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Publish(gomock.Any(), id, s.actorID, "promoter").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OpportunityHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/opportunities/" + id.String()
	view := builder.NewOpportunityBuilder().BuildViewQuery()

	s.Run("success: partial update returns the refreshed view", func() {
		body := map[string]any{"title": "Harbor Cleanup"}

		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), s.actorID, "promoter").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actorID, "promoter").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when capacity drops below the approved count", func() {
		body := map[string]any{"max_volunteers": 1}

		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), s.actorID, "promoter").
			Return(opportunity.ErrInvalidCapacityReduction).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 409 when the opportunity is no longer editable", func() {
		body := map[string]any{"title": "Harbor Cleanup"}

		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any(), s.actorID, "promoter").
			Return(opportunity.ErrInvalidStateTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OpportunityHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/opportunities/" + id.String() + "/cancel"
	view := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
		o.Status = "cancelled"
	}).BuildViewQuery()

	s.Run("success: returns 200 with the cancelled opportunity", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, "promoter").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.actorID, "promoter").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.OpportunityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, "promoter").
			Return(opportunity.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *OpportunityHandlerTestSuite) TestGet() {
	view := builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) {
		o.Status = "open"
	}).BuildViewQuery()

	s.Run("success: returns the opportunity", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, uuid.Nil, "").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/opportunities/"+view.ID.String(), nil, "")

		var response resdto.OpportunityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 404 for a hidden or missing opportunity", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, uuid.Nil, "").
			Return(nil, queries.ErrOpportunityNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/opportunities/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *OpportunityHandlerTestSuite) TestList() {
	s.Run("success: returns items and a next cursor", func() {
		items := []*queries.OpportunityListItem{
			builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) { o.Status = "open" }).BuildListItem(),
			builder.NewOpportunityBuilder().With(func(o *builder.OpportunityBuilder) { o.Status = "open" }).BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}

		s.mockQueries.EXPECT().List(gomock.Any(), nil, nil, 20).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/opportunities", nil, "")

		var response resdto.OpportunityListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.NotNil(response.NextCursor)
	})

	s.Run("success: forwards status filter and limit", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), nil, 5).
			DoAndReturn(func(_ any, status *string, _ *queries.Cursor, _ int) ([]*queries.OpportunityListItem, *queries.Cursor, error) {
				s.Require().NotNil(status)
				s.Equal("open", *status)
				return nil, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/opportunities?status=open&limit=5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an undecodable cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil, gomock.Any(), 20).
			Return(nil, nil, errors.New("invalid cursor encoding")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/opportunities?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OpportunityHandlerTestSuite) TestListMine() {
	url := "/users/me/opportunities"

	s.Run("success: lists the actor's own opportunities", func() {
		items := []*queries.OpportunityListItem{
			builder.NewOpportunityBuilder().BuildListItem(),
		}

		s.mockQueries.EXPECT().ListByPromoter(gomock.Any(), s.actorID, nil, 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OpportunityListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Nil(response.NextCursor)
	})

	s.Run("success: forwards cursor and limit", func() {
		s.mockQueries.EXPECT().ListByPromoter(gomock.Any(), s.actorID, gomock.Any(), 5).
			DoAndReturn(func(_ any, _ uuid.UUID, after *queries.Cursor, _ int) ([]*queries.OpportunityListItem, *queries.Cursor, error) {
				s.Require().NotNil(after)
				s.Equal("abc", after.After)
				return nil, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when the query fails", func() {
		s.mockQueries.EXPECT().ListByPromoter(gomock.Any(), s.actorID, nil, 20).
			Return(nil, nil, errors.New("invalid cursor encoding")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
