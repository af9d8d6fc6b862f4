package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"facebeat/app/dto"
	jwtutil "facebeat/app/jwt"
	"facebeat/app/services"
)

type AdminController struct {
	Users  *services.UserService
	Songs  *services.SongService
	Signer *jwtutil.Signer
}

func NewAdminController(users *services.UserService, songs *services.SongService, signer *jwtutil.Signer) *AdminController {
	return &AdminController{Users: users, Songs: songs, Signer: signer}
}

func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	u, err := c.Users.Login(req.UserID, req.Password)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
		return
	}
	if u.Role != "admin" {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"not an admin account"}`))
		return
	}
	token, err := c.Signer.Sign(u.ID, u.LoginID, u.DisplayName, u.Role)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.AdminLoginResponse{Success: true, Role: "ADMIN", UserID: u.LoginID, Token: token})
}

// UploadSong accepts a multipart form with the song metadata plus a required
// songFile part and an optional imageFile part.
func (c *AdminController) UploadSong(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid multipart form"}`))
		return
	}

	meta := services.SongUpload{
		Title:  r.FormValue("title"),
		Artist: r.FormValue("artist"),
	}
	meta.BPM, _ = strconv.Atoi(r.FormValue("bpm"))
	meta.Duration, _ = strconv.Atoi(r.FormValue("duration"))
	meta.Difficulty, _ = strconv.Atoi(r.FormValue("difficulty"))

	audio, audioHeader, err := r.FormFile("songFile")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing songFile"}`))
		return
	}
	defer audio.Close()

	var imageReader io.Reader
	var imageName string
	if image, imageHeader, ferr := r.FormFile("imageFile"); ferr == nil {
		defer image.Close()
		imageReader = image
		imageName = imageHeader.Filename
	}

	created, err := c.Songs.AddSong(meta, audio, audioHeader.Filename, imageReader, imageName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSongMeta) || errors.Is(err, services.ErrMissingAudio) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid song metadata"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(dto.NewSongResponse(created))
}

// DeleteSong handles DELETE /api/admin/songs/{id}.
func (c *AdminController) DeleteSong(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/api/admin/songs/")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Songs.DeleteSong(uint(id)); err != nil {
		if errors.Is(err, services.ErrUnknownSong) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
