package db_models

import "github.com/lib/pq"

// BabyCaregiver links a user to a baby they may view and log for.
// A user has at most one caregiver record per baby.
type BabyCaregiver struct {
	BaseModel
	BabyID       uint   `gorm:"uniqueIndex:idx_baby_user"`
	UserID       uint   `gorm:"uniqueIndex:idx_baby_user"`
	Relationship string
	Permissions  pq.StringArray `gorm:"type:text[]"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
