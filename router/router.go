package router

import (
	"net/http"

	"facebeat/app/controllers"
	"facebeat/app/middleware"
)

func NewRouter(authCtrl *controllers.AuthController, songCtrl *controllers.SongController, scoreCtrl *controllers.ScoreController, adminCtrl *controllers.AdminController, mw *middleware.Auth, staticDir string) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/api/users/signup", authCtrl.Signup)
	mux.HandleFunc("/api/users/login", authCtrl.Login)
	mux.HandleFunc("/api/users/check-id", authCtrl.CheckID)
	// legacy aliases kept for the older frontend builds
	mux.HandleFunc("/api/auth/register", authCtrl.Signup)
	mux.HandleFunc("/api/auth/login", authCtrl.Login)

	mux.HandleFunc("/api/songs", songCtrl.List)
	mux.HandleFunc("/api/scores/ranking", scoreCtrl.Ranking)

	// score submission requires a logged-in player
	mux.Handle("/api/scores", mw.RequireAuth(http.HandlerFunc(scoreCtrl.Submit)))

	// admin
	mux.HandleFunc("/api/admin/login", adminCtrl.Login)
	mux.Handle("/api/admin/songs", mw.RequireAdmin(http.HandlerFunc(adminCtrl.UploadSong)))
	mux.Handle("/api/admin/songs/", mw.RequireAdmin(http.HandlerFunc(adminCtrl.DeleteSong)))

	// uploaded media
	fs := http.FileServer(http.Dir(staticDir))
	mux.Handle("/songs/", fs)
	mux.Handle("/images/", fs)

	return mux
}
