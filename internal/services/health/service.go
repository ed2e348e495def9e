package health

// Status is the health check payload.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{
		Status:  "OK",
		Message: "Restaurant Finder API is running",
	}
}
