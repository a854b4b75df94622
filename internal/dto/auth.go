package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Role            string `json:"role"`
	Branch          string `json:"branch"`
	Email           string `json:"email"`
}

type LoginFailure struct {
	Message string `json:"message"`
}
