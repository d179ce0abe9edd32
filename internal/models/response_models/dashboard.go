package response_models

import (
	"time"

	"babylog/internal/models/db_models"
)

type BabySummary struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      *string   `json:"gender,omitempty"`
	IsOwner     bool      `json:"isOwner"`
}

type DashboardResponse struct {
	Babies []BabySummary `json:"babies"`
}

func BuildDashboardResponse(userID uint, babies []db_models.Baby) *DashboardResponse {
	out := make([]BabySummary, 0, len(babies))
	for _, b := range babies {
		out = append(out, BabySummary{
			ID:          b.ID,
			FirstName:   b.FirstName,
			LastName:    b.LastName,
			DateOfBirth: b.DateOfBirth,
			Gender:      b.Gender,
			IsOwner:     b.OwnerID == userID,
		})
	}
	return &DashboardResponse{Babies: out}
}
