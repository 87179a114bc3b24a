package models

// FortnightPayload is the request body for POST /fortnight.
type FortnightPayload struct {
	Timestamp string `json:"timestamp"`
}

// FortnightBatchPayload is the request body for PUT /fortnight.
type FortnightBatchPayload struct {
	Timestamp string `json:"timestamp"`
	N         *int   `json:"n"`
}
