package dto

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE BANNED"`
}
