package dto

import (
	"time"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type CreateBookingRequest struct {
	TutorProfileID string    `json:"tutor_profile_id" binding:"required,uuid"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Price          float64   `json:"price" binding:"required,gt=0"`
}

func MapCreateBookingRequest(req *CreateBookingRequest) domain.CreateBookingInput {
	return domain.CreateBookingInput{
		TutorProfileID: req.TutorProfileID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Price:          req.Price,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONFIRMED COMPLETED CANCELLED"`
}
