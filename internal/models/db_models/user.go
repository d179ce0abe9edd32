package db_models

type User struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        *string

	OwnedBabies   []Baby          `gorm:"foreignKey:OwnerID"`
	CaregiverFor  []BabyCaregiver `gorm:"foreignKey:UserID"`
	SentInvites   []ParentInvite  `gorm:"foreignKey:SenderID"`
}
