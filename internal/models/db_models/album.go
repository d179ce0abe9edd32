package db_models

type Album struct {
	BaseModel
	BabyID      uint `gorm:"index"`
	Title       string
	Description *string

	Photos []AlbumPhoto `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
}
