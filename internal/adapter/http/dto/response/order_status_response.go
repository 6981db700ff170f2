package response

import (
	"ordenes_campo/internal/domain/entities"
	"ordenes_campo/internal/domain/rules"
	"ordenes_campo/internal/usecase"
)

type TransitionStateResponse struct {
	Phase   string `json:"phase"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

func FromTransitionState(s entities.TransitionState) TransitionStateResponse {
	if s == nil {
		s = entities.TransitionIdle{}
	}
	res := TransitionStateResponse{Phase: string(s.Phase())}
	switch v := s.(type) {
	case entities.TransitionConfirmPending:
		res.Status = string(v.Status)
	case entities.TransitionSubmitting:
		res.Status = string(v.Status)
	case entities.TransitionFailed:
		res.Message = v.Message
	case entities.TransitionSucceeded:
		res.Status = string(v.Status)
		res.Message = v.Message
	}
	return res
}

type StatusChangeResponse struct {
	Success              bool                    `json:"success"`
	Changed              bool                    `json:"changed"`
	Message              string                  `json:"message"`
	ConfirmationRequired bool                    `json:"confirmationRequired"`
	PendingStatus        string                  `json:"pendingStatus,omitempty"`
	State                TransitionStateResponse `json:"state"`
	Order                *OrderResponse          `json:"order,omitempty"`
}

func FromStatusChange(r usecase.StatusChangeResult) StatusChangeResponse {
	return StatusChangeResponse{
		Success:              true,
		Changed:              r.Changed,
		Message:              r.Message,
		ConfirmationRequired: r.ConfirmationRequired,
		PendingStatus:        string(r.PendingStatus),
		State:                FromTransitionState(r.State),
		Order:                FromOrder(r.Order),
	}
}

type StatusOptionResponse struct {
	Value                string `json:"value"`
	Label                string `json:"label"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	ConfirmMessage       string `json:"confirmMessage,omitempty"`
}

func FromStatusOptions(opts []rules.StatusOption) []StatusOptionResponse {
	out := make([]StatusOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, StatusOptionResponse{
			Value:                string(o.Value),
			Label:                o.Label,
			RequiresConfirmation: o.RequiresConfirmation,
			ConfirmMessage:       o.ConfirmMessage,
		})
	}
	return out
}
