package services

import (
	"errors"
	"fmt"
	"io"

	"facebeat/app/models"
	"facebeat/app/repo"
	"facebeat/app/storage"
	"facebeat/global"

	"gorm.io/gorm"
)

const maxDifficulty = 10

var ErrInvalidSongMeta = errors.New("invalid song metadata")

type SongService struct {
	songs *repo.SongRepository
	media storage.Gateway
}

func NewSongService(songs *repo.SongRepository, media storage.Gateway) *SongService {
	return &SongService{songs: songs, media: media}
}

type SongUpload struct {
	Title      string
	Artist     string
	BPM        int
	Duration   int
	Difficulty int
}

// AddSong stores the audio (required) and image (optional) assets, then
// persists the catalog row pointing at the stored reference paths.
func (s *SongService) AddSong(meta SongUpload, audio io.Reader, audioName string, image io.Reader, imageName string) (*models.Song, error) {
	if meta.Title == "" || meta.BPM <= 0 || meta.Difficulty < 1 || meta.Difficulty > maxDifficulty {
		return nil, ErrInvalidSongMeta
	}
	if audio == nil {
		return nil, ErrMissingAudio
	}

	filePath, err := s.media.Store(audio, audioName, storage.KindSong)
	if err != nil {
		return nil, fmt.Errorf("store audio: %w", err)
	}
	var imagePath string
	if image != nil {
		imagePath, err = s.media.Store(image, imageName, storage.KindImage)
		if err != nil {
			// don't leave the audio asset orphaned
			s.deleteAsset(filePath)
			return nil, fmt.Errorf("store image: %w", err)
		}
	}

	song := &models.Song{
		Title:      meta.Title,
		Artist:     meta.Artist,
		BPM:        meta.BPM,
		Duration:   meta.Duration,
		Difficulty: meta.Difficulty,
		FilePath:   filePath,
		ImagePath:  imagePath,
	}
	if err := s.songs.Create(song); err != nil {
		s.deleteAsset(filePath)
		s.deleteAsset(imagePath)
		return nil, err
	}
	return song, nil
}

// DeleteSong removes both media assets best-effort (each attempted even if
// the other fails), then deletes the catalog row and its scores.
func (s *SongService) DeleteSong(id uint) error {
	song, err := s.songs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownSong
		}
		return err
	}
	s.deleteAsset(song.FilePath)
	s.deleteAsset(song.ImagePath)
	return s.songs.DeleteWithScores(id)
}

func (s *SongService) ListSongs() ([]models.Song, error) { return s.songs.FindAll() }

func (s *SongService) GetSong(id uint) (*models.Song, error) {
	song, err := s.songs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownSong
		}
		return nil, err
	}
	return song, nil
}

func (s *SongService) deleteAsset(refPath string) {
	if refPath == "" {
		return
	}
	if err := s.media.Delete(refPath); err != nil {
		global.Logger.Warn().Str("path", refPath).Err(err).Msg("delete media asset")
	}
}
