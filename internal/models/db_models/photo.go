package db_models

import "time"

// Photo stores the object-store key in URL, never a browser-fetchable
// address. Viewing URLs are presigned at read time.
type Photo struct {
	BaseModel
	URL       string
	Caption   *string
	Timestamp time.Time `gorm:"index"`
}

type BabyPhoto struct {
	BabyID    uint `gorm:"primaryKey"`
	PhotoID   uint `gorm:"primaryKey"`
	CreatedAt int64 `gorm:"autoCreateTime"`

	Photo Photo `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}

type AlbumPhoto struct {
	AlbumID   uint `gorm:"primaryKey"`
	PhotoID   uint `gorm:"primaryKey"`
	CreatedAt int64 `gorm:"autoCreateTime"`

	Photo Photo `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}
