package db_models

import "time"

type Elimination struct {
	BaseModel
	BabyID    uint      `gorm:"index:idx_elimination_baby_ts"`
	Timestamp time.Time `gorm:"index:idx_elimination_baby_ts"`
	Type      string
	Weight    *float64
	Success   bool
	Location  *string
	Notes     *string
}
