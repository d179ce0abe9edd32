package db_models

import "time"

type Feeding struct {
	BaseModel
	BabyID    uint      `gorm:"index:idx_feeding_baby_start"`
	StartTime time.Time `gorm:"index:idx_feeding_baby_start"`
	EndTime   *time.Time
	Type      string
	Side      *string
	Amount    *float64
	Food      *string
	Notes     *string
}
