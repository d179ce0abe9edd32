package db_models

import "time"

type Baby struct {
	BaseModel
	FirstName   string
	LastName    string
	DateOfBirth time.Time `gorm:"index"`
	Gender      *string
	OwnerID     uint

	Owner        User            `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Caregivers   []BabyCaregiver `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Eliminations []Elimination   `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Feedings     []Feeding       `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Sleeps       []Sleep         `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Milestones   []Milestone     `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Measurements []Measurement   `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Albums       []Album         `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Photos       []BabyPhoto     `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
	Invites      []ParentInvite  `gorm:"foreignKey:BabyID;constraint:OnDelete:CASCADE"`
}
