package request_models

type CreateBabyRequest struct {
	FirstName   string `form:"firstName" json:"firstName"`
	LastName    string `form:"lastName" json:"lastName"`
	DateOfBirth string `form:"dateOfBirth" json:"dateOfBirth"`
	Gender      string `form:"gender" json:"gender"`

	// Optional invite sent alongside creation.
	InviteParent bool   `form:"inviteParent" json:"inviteParent"`
	ParentEmail  string `form:"parentEmail" json:"parentEmail"`
}
