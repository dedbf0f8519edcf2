package response

import "tour-booking/internal/data/entity"

type BookingResponse struct {
	Success bool            `json:"success"`
	Booking *entity.Booking `json:"booking"`
	Message string          `json:"message,omitempty"`
}

type DeletedBookingResponse struct {
	Success        bool            `json:"success"`
	DeletedBooking *entity.Booking `json:"deletedBooking"`
	Message        string          `json:"message,omitempty"`
}

type BookingListResponse struct {
	Bookings []entity.Booking `json:"bookings"`
	Message  string           `json:"message,omitempty"`
}

type AdminBookingListResponse struct {
	Bookings   []entity.Booking `json:"bookings"`
	Pagination PaginationMeta   `json:"pagination"`
}
