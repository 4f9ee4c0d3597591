package dto

const (
	StatusOK   = "ok"
	StatusDown = "down"
)

type CheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	CheckedAt string                   `json:"checked_at"`
	Checks    map[string]CheckResponse `json:"checks"`
}

// Healthy reports whether every dependency answered.
func (r *HealthResponse) Healthy() bool {
	return r.Status == StatusOK
}
