package dto

type SignupRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	Nickname    string `json:"nickname"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}
