package dto

import "github.com/md-abdullah-al-ahad/skillsync-backend/domain"

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" binding:"required,uuid"`
	Rating    int     `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   *string `json:"comment" binding:"omitempty,max=1000"`
}

func MapCreateReviewRequest(req *CreateReviewRequest) domain.CreateReviewInput {
	return domain.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
}
