package request_models

type SubmitFeedbackRequest struct {
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Category  string `json:"category"`
	Timestamp string `json:"timestamp"` // RFC 3339; defaults to submission time when empty
}
