package response_models

import "time"

// PhotoResponse carries a presigned viewing URL, never the raw object key.
type PhotoResponse struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
