package request

import "tour-booking/internal/data/entity"

type CreateBookingRequest struct {
	TourID       entity.FlexID `json:"tourId" validate:"required"`
	TourTitle    string        `json:"tourTitle" validate:"required"`
	GuideID      entity.FlexID `json:"guideId" validate:"required"`
	GuideName    string        `json:"guideName"`
	TravelerID   entity.FlexID `json:"travelerId" validate:"required"`
	TravelerName string        `json:"travelerName"`
	Date         string        `json:"date" validate:"required"`
	StartTime    string        `json:"startTime" validate:"required"`
	EndTime      string        `json:"endTime" validate:"required"`
	Participants int           `json:"participants" validate:"required,min=1"`
	TotalPrice   int           `json:"totalPrice" validate:"required,min=1"`
	Status       string        `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
