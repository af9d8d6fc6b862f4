package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"facebeat/app/dto"
	jwtutil "facebeat/app/jwt"
	"facebeat/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == "" || req.Username == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing fields"}`))
		return
	}
	if _, err := c.Users.Signup(req.UserID, req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateIdentifier) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"login id already exists"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing credentials"}`))
		return
	}
	u, err := c.Users.Login(req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.LoginID, u.DisplayName, u.Role)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"token error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.TokenResponse{AccessToken: token, Nickname: u.DisplayName})
}

// CheckID answers whether a login id is still free, for the signup form.
func (c *AuthController) CheckID(w http.ResponseWriter, r *http.Request) {
	loginID := r.URL.Query().Get("userId")
	if loginID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	available, err := c.Users.CheckID(loginID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !available {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"available":false}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"available":true}`))
}
