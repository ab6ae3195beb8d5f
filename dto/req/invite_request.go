package req

// InviteRequest names the user the caller wants to invite. Sender display
// fields are resolved server-side from the authenticated user, never trusted
// from the body.
type InviteRequest struct {
	RecipientEmail string `json:"invitedEmail" validate:"required,email"`
}

// InviteDecisionRequest accepts or rejects a pending invite held by the
// caller.
type InviteDecisionRequest struct {
	SenderEmail string `json:"senderEmail" validate:"required,email"`
}
