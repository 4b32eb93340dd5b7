package response

import (
	"time"

	"nagrik_seva/internal/domain/entities"
)

type AgentResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Specializations []string  `json:"specializations"`
	IsOnline        bool      `json:"is_online"`
	IsBlocked       bool      `json:"is_blocked"`
	CurrentLoad     int       `json:"current_load"`
	MaxCapacity     int       `json:"max_capacity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromAgent(a entities.Agent) AgentResponse {
	return AgentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Role:            string(a.Role),
		Specializations: a.Specializations.TagList(),
		IsOnline:        a.IsOnline,
		IsBlocked:       a.IsBlocked,
		CurrentLoad:     a.CurrentLoad,
		MaxCapacity:     a.MaxCapacity,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
