package controllers

import (
	"encoding/json"
	"net/http"

	"facebeat/app/dto"
	"facebeat/app/services"
)

type SongController struct{ Songs *services.SongService }

func NewSongController(songs *services.SongService) *SongController {
	return &SongController{Songs: songs}
}

func (c *SongController) List(w http.ResponseWriter, r *http.Request) {
	songs, err := c.Songs.ListSongs()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	out := make([]dto.SongResponse, 0, len(songs))
	for i := range songs {
		out = append(out, dto.NewSongResponse(&songs[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
