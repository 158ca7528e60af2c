package response

import (
	"time"

	"volunteer-hub/internal/usecase/commands"
	"volunteer-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RewardType     string     `json:"rewardType"`
	Partner        *string    `json:"partner,omitempty"`
	PointsCost     int32      `json:"pointsCost"`
	Quantity       *int32     `json:"quantity,omitempty"`
	AvailableFrom  *time.Time `json:"availableFrom,omitempty"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
}

type RedemptionResponse struct {
	ID          uuid.UUID  `json:"id"`
	RewardID    uuid.UUID  `json:"rewardId"`
	RewardTitle string     `json:"rewardTitle"`
	Code        string     `json:"code"`
	PointsSpent int32      `json:"pointsSpent"`
	RedeemedAt  time.Time  `json:"redeemedAt"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
}

type RedeemResponse struct {
	RedemptionID uuid.UUID `json:"redemptionId"`
	Code         string    `json:"code"`
	PointsSpent  int32     `json:"pointsSpent"`
}

type BalanceResponse struct {
	UserID uuid.UUID `json:"userId"`
	Points int32     `json:"points"`
}

func FromRewardView(v *queries.RewardView) *RewardResponse {
	return &RewardResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		RewardType:     v.RewardType,
		Partner:        v.Partner,
		PointsCost:     v.PointsCost,
		Quantity:       v.Quantity,
		AvailableFrom:  v.AvailableFrom,
		AvailableUntil: v.AvailableUntil,
	}
}

func FromRewardViews(views []*queries.RewardView) []*RewardResponse {
	result := make([]*RewardResponse, len(views))
	for i, v := range views {
		result[i] = FromRewardView(v)
	}
	return result
}

func FromRedemptionView(v *queries.RedemptionView) *RedemptionResponse {
	return &RedemptionResponse{
		ID:          v.ID,
		RewardID:    v.RewardID,
		RewardTitle: v.RewardTitle,
		Code:        v.Code,
		PointsSpent: v.PointsSpent,
		RedeemedAt:  v.RedeemedAt,
		UsedAt:      v.UsedAt,
	}
}

func FromRedemptionViews(views []*queries.RedemptionView) []*RedemptionResponse {
	result := make([]*RedemptionResponse, len(views))
	for i, v := range views {
		result[i] = FromRedemptionView(v)
	}
	return result
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		RedemptionID: r.RedemptionID,
		Code:         r.Code,
		PointsSpent:  r.PointsSpent,
	}
}
