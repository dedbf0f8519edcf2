package entity

// TimeSlot is a bookable capacity template within an available date.
// MaxParticipants caps the group size of the single reservation that can
// hold the slot, not the number of concurrent reservations.
type TimeSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	MaxParticipants int    `json:"maxParticipants"`
}

type AvailableDate struct {
	Date      string     `json:"date"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

type Tour struct {
	ID               int             `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Price            int             `json:"price"`
	Duration         string          `json:"duration"`
	Details          []string        `json:"details"`
	Image            string          `json:"image"`
	Images           []string        `json:"images,omitempty"`
	GuideID          string          `json:"guideId"`
	GuideName        string          `json:"guideName"`
	GuideDescription string          `json:"guideDescription,omitempty"`
	GuideImage       string          `json:"guideImage,omitempty"`
	GuideRating      float64         `json:"guideRating,omitempty"`
	GuideSpecialties []string        `json:"guideSpecialties,omitempty"`
	MaxParticipants  int             `json:"maxParticipants,omitempty"`
	GuideLanguage    string          `json:"guideLanguage,omitempty"`
	AvailableDates   []AvailableDate `json:"availableDates"`
}
