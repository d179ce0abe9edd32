package db_models

import "time"

type Milestone struct {
	BaseModel
	BabyID      uint      `gorm:"index:idx_milestone_baby_date"`
	Date        time.Time `gorm:"index:idx_milestone_baby_date"`
	Category    string
	Title       string
	Description *string
	Notes       *string
}
