package request_models

// AddCaregiverRequest grants access either to an existing account by id
// or by emailing an invite. Exactly one of UserID and Email is expected.
type AddCaregiverRequest struct {
	UserID       uint     `form:"userId" json:"userId"`
	Email        string   `form:"email" json:"email"`
	Relationship string   `form:"relationship" json:"relationship"`
	Permissions  []string `form:"permissions" json:"permissions"`
}

type RespondInviteRequest struct {
	Action string `form:"action" json:"action" binding:"required,oneof=accept decline"`
}

type TransferOwnerRequest struct {
	NewOwnerID uint `form:"newOwnerId" json:"newOwnerId" binding:"required"`
}
