package response_models

import (
	"time"

	"babylog/internal/models/db_models"
)

type CaregiverResponse struct {
	UserID       uint     `json:"userId"`
	Relationship string   `json:"relationship"`
	Permissions  []string `json:"permissions"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
}

type BabyResponse struct {
	ID          uint                `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	DateOfBirth time.Time           `json:"dateOfBirth"`
	Gender      *string             `json:"gender,omitempty"`
	OwnerID     uint                `json:"ownerId"`
	Caregivers  []CaregiverResponse `json:"caregivers"`
}

func BuildBabyResponse(baby *db_models.Baby) *BabyResponse {
	caregivers := make([]CaregiverResponse, 0, len(baby.Caregivers))
	for _, c := range baby.Caregivers {
		caregivers = append(caregivers, CaregiverResponse{
			UserID:       c.UserID,
			Relationship: c.Relationship,
			Permissions:  c.Permissions,
			FirstName:    c.User.FirstName,
			LastName:     c.User.LastName,
		})
	}

	return &BabyResponse{
		ID:          baby.ID,
		FirstName:   baby.FirstName,
		LastName:    baby.LastName,
		DateOfBirth: baby.DateOfBirth,
		Gender:      baby.Gender,
		OwnerID:     baby.OwnerID,
		Caregivers:  caregivers,
	}
}
