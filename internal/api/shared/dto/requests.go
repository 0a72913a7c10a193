package dto

// SetFrequencyRequest is the body of PUT /api/v1/sync/frequency
type SetFrequencyRequest struct {
	Collection string `json:"collection" binding:"required"`
	Seconds    int64  `json:"seconds" binding:"required"`
}
