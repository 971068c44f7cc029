package dto

// StatusOK is the status value reported while the service is running.
const StatusOK = "ok"

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"daily-sales-api"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

// NewStatusResponse reports service as running.
func NewStatusResponse(service string) StatusResponse {
	return StatusResponse{
		Status:  StatusOK,
		Service: service,
	}
}
