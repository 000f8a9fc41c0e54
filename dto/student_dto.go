package dto

import "github.com/md-abdullah-al-ahad/skillsync-backend/domain"

type UpdateStudentProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=50"`
	Phone *string `json:"phone" binding:"omitempty,numeric,min=9,max=14"`
}

func MapUpdateStudentProfileRequest(req *UpdateStudentProfileRequest) domain.UpdateStudentProfileInput {
	return domain.UpdateStudentProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	}
}
