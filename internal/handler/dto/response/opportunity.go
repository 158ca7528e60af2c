package response

import (
	"time"

	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OpportunityResponse struct {
	ID            uuid.UUID       `json:"id"`
	PromoterID    uuid.UUID       `json:"promoterId"`
	PromoterEmail string          `json:"promoterEmail"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PointsReward  int32           `json:"pointsReward"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	MaxVolunteers int32           `json:"maxVolunteers"`
	ApprovedCount int32           `json:"approvedCount"`
	Status        string          `json:"status"`
	Skills        []SkillResponse `json:"skills"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type OpportunityListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	PointsReward  int32     `json:"pointsReward"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	MaxVolunteers int32     `json:"maxVolunteers"`
	ApprovedCount int32     `json:"approvedCount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OpportunityListResponse struct {
	Items      []*OpportunityListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

func FromOpportunityView(v *queries.OpportunityView) *OpportunityResponse {
	skills := make([]SkillResponse, len(v.Skills))
	for i, s := range v.Skills {
		skills[i] = SkillResponse{ID: s.ID, Name: s.Name}
	}
	return &OpportunityResponse{
		ID:            v.ID,
		PromoterID:    v.PromoterID,
		PromoterEmail: v.PromoterEmail,
		Title:         v.Title,
		Description:   v.Description,
		Location:      v.Location,
		PointsReward:  v.PointsReward,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		MaxVolunteers: v.MaxVolunteers,
		ApprovedCount: v.ApprovedCount,
		Status:        v.Status,
		Skills:        skills,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromOpportunityList(items []*queries.OpportunityListItem, next *queries.Cursor) *OpportunityListResponse {
	resp := &OpportunityListResponse{
		Items: make([]*OpportunityListItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = &OpportunityListItemResponse{
			ID:            item.ID,
			Title:         item.Title,
			Location:      item.Location,
			PointsReward:  item.PointsReward,
			StartDate:     item.StartDate,
			EndDate:       item.EndDate,
			MaxVolunteers: item.MaxVolunteers,
			ApprovedCount: item.ApprovedCount,
			Status:        item.Status,
			CreatedAt:     item.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
