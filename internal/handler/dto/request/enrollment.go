package request

import "strings"

type ApplyRequest struct {
	Message *string `json:"message,omitempty" binding:"omitempty,max=1000"`
}

func (r ApplyRequest) GetMessage() *string {
	if r.Message == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Message)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}
