package db_models

import "time"

type Sleep struct {
	BaseModel
	BabyID          uint      `gorm:"index:idx_sleep_baby_start"`
	StartTime       time.Time `gorm:"index:idx_sleep_baby_start"`
	EndTime         *time.Time
	Type            string
	How             *string
	WhereFellAsleep *string
	WhereSlept      *string
	Quality         *int
	Notes           *string
}
