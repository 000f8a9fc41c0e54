package dto

import "github.com/md-abdullah-al-ahad/skillsync-backend/domain"

type UpdateTutorProfileRequest struct {
	Bio         *string  `json:"bio" binding:"omitempty,max=2000"`
	HourlyRate  *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
	Experience  *int     `json:"experience" binding:"omitempty,gte=0"`
	CategoryIDs []string `json:"category_ids" binding:"omitempty,dive,uuid"`
}

func MapUpdateTutorProfileRequest(req *UpdateTutorProfileRequest) domain.UpdateTutorProfileInput {
	return domain.UpdateTutorProfileInput{
		Bio:         req.Bio,
		HourlyRate:  req.HourlyRate,
		Experience:  req.Experience,
		CategoryIDs: req.CategoryIDs,
	}
}

type AvailabilitySlotRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime string `json:"start_time" binding:"required,timeformat"`
	EndTime   string `json:"end_time" binding:"required,timeformat"`
	IsActive  *bool  `json:"is_active" binding:"omitempty"`
}

// Slots default to active unless the request says otherwise.
func MapAvailabilitySlotRequest(req *AvailabilitySlotRequest) domain.AvailabilitySlotInput {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.AvailabilitySlotInput{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  active,
	}
}

type ReplaceAvailabilityRequest struct {
	Slots []AvailabilitySlotRequest `json:"slots" binding:"required,dive"`
}

func MapReplaceAvailabilityRequest(req *ReplaceAvailabilityRequest) []domain.AvailabilitySlotInput {
	slots := make([]domain.AvailabilitySlotInput, 0, len(req.Slots))
	for i := range req.Slots {
		slots = append(slots, MapAvailabilitySlotRequest(&req.Slots[i]))
	}
	return slots
}
