package dto

type SessionResponse struct {
	ID                  string                  `json:"id"`
	Form                SimulationFormView      `json:"form"`
	Rate                *RateQuoteResponse      `json:"rate"`
	CanSubmit           bool                    `json:"can_submit"`
	Simulation          *SimulationResponse     `json:"simulation,omitempty"`
	SimulationError     string                  `json:"simulation_error,omitempty"`
	Recommendation      *RecommendationResponse `json:"recommendation,omitempty"`
	RecommendationError string                  `json:"recommendation_error,omitempty"`
	UpdatedAt           string                  `json:"updated_at"`
}

type FormEditRequest struct {
	Field string     `json:"field" validate:"required"`
	Value FlexString `json:"value"`
}

type FormEditResponse struct {
	Applied bool            `json:"applied"`
	Session SessionResponse `json:"session"`
}

// SubmissionResponse answers a session submission. Committed is false when a
// newer submission was made while this one was in flight.
type SubmissionResponse struct {
	Committed      bool                    `json:"committed"`
	Generation     uint64                  `json:"generation"`
	Simulation     *SimulationResponse     `json:"simulation,omitempty"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
	Error          string                  `json:"error,omitempty"`
}
