package request

type CreateTourRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Price            int      `json:"price" validate:"required,min=1"`
	Duration         string   `json:"duration" validate:"required"`
	Details          []string `json:"details"`
	Images           []string `json:"images"`
	GuideName        string   `json:"guideName" validate:"required"`
	GuideDescription string   `json:"guideDescription"`
	GuideImage       string   `json:"guideImage"`
	MaxParticipants  int      `json:"maxParticipants"`
	GuideLanguage    string   `json:"guideLanguage"`
}
