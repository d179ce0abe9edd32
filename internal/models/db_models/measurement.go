package db_models

import "time"

type Measurement struct {
	BaseModel
	BabyID   uint      `gorm:"index:idx_measurement_baby_date"`
	Date     time.Time `gorm:"index:idx_measurement_baby_date"`
	Weight   *float64
	Height   *float64
	HeadCirc *float64
	Notes    *string
}
