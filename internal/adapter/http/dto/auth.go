package dto

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type DisplayNameRequest struct {
	DisplayName string `json:"displayName"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	ExpiresAt     string `json:"expiresAt,omitempty"`
}
