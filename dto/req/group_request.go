package req

type CreateGroupRequest struct {
	GroupName    string   `json:"groupName" validate:"required,min=1,max=100"`
	GroupIcon    string   `json:"groupIcon"`
	Participants []string `json:"participants" validate:"required,min=1,dive,email"`
}
