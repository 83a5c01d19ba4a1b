package dto

type OnboardingResponse struct {
	Completed bool `json:"completed"`
}
