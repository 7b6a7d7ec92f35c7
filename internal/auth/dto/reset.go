package dto

type ResetRequestInput struct {
	Email string `json:"email"`
}

type ResetConfirmInput struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
