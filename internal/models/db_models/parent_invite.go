package db_models

const (
	InviteStatusPending  = "PENDING"
	InviteStatusAccepted = "ACCEPTED"
	InviteStatusDeclined = "DECLINED"
)

type ParentInvite struct {
	BaseModel
	Email    string `gorm:"uniqueIndex:idx_invite_email_baby"`
	BabyID   uint   `gorm:"uniqueIndex:idx_invite_email_baby"`
	SenderID uint   `gorm:"index"`
	Status   string `gorm:"default:PENDING"`
}
