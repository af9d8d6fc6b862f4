package services

import (
	"errors"

	"facebeat/app/models"
	"facebeat/app/repo"

	"gorm.io/gorm"
)

type ScoreService struct {
	scores *repo.ScoreRepository
	songs  *repo.SongRepository
	users  *repo.UserRepository
}

func NewScoreService(scores *repo.ScoreRepository, songs *repo.SongRepository, users *repo.UserRepository) *ScoreService {
	return &ScoreService{scores: scores, songs: songs, users: users}
}

// RankingEntry is one leaderboard row. DisplayName and SongTitle are looked
// up at read time, so a renamed player shows their current name on old rows.
type RankingEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	SongTitle   string `json:"songTitle"`
	Score       int    `json:"score"`
}

// Submit appends one immutable score row. The user id is an opaque
// reference; only the song must exist.
func (s *ScoreService) Submit(userID string, songID uint, value int) (*models.Score, error) {
	if value < 0 {
		return nil, ErrInvalidScore
	}
	if _, err := s.songs.FindByID(songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownSong
		}
		return nil, err
	}
	score := &models.Score{UserID: userID, SongID: songID, Value: value}
	if err := s.scores.Create(score); err != nil {
		return nil, err
	}
	return score, nil
}

// TopN builds the leaderboard: value descending, earlier submission winning
// ties, ranks assigned 1..k over the truncated sequence. With a songID the
// board is scoped to that song; the filter must name a real song.
func (s *ScoreService) TopN(n int, songID *uint) ([]RankingEntry, error) {
	if n <= 0 {
		return []RankingEntry{}, nil
	}
	if songID != nil {
		if _, err := s.songs.FindByID(*songID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownSong
			}
			return nil, err
		}
	}

	scores, err := s.scores.TopN(n, songID)
	if err != nil {
		return nil, err
	}

	names, titles, err := s.resolveRefs(scores)
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(scores))
	for i, sc := range scores {
		name, ok := names[sc.UserID]
		if !ok {
			// user gone or never registered; show the raw id
			name = sc.UserID
		}
		entries = append(entries, RankingEntry{
			Rank:        i + 1,
			UserID:      sc.UserID,
			DisplayName: name,
			SongTitle:   titles[sc.SongID],
			Score:       sc.Value,
		})
	}
	return entries, nil
}

func (s *ScoreService) resolveRefs(scores []models.Score) (map[string]string, map[uint]string, error) {
	userIDs := make([]string, 0, len(scores))
	songIDs := make([]uint, 0, len(scores))
	seenUsers := make(map[string]bool)
	seenSongs := make(map[uint]bool)
	for _, sc := range scores {
		if !seenUsers[sc.UserID] {
			seenUsers[sc.UserID] = true
			userIDs = append(userIDs, sc.UserID)
		}
		if !seenSongs[sc.SongID] {
			seenSongs[sc.SongID] = true
			songIDs = append(songIDs, sc.SongID)
		}
	}

	users, err := s.users.FindByLoginIDs(userIDs)
	if err != nil {
		return nil, nil, err
	}
	songs, err := s.songs.FindByIDs(songIDs)
	if err != nil {
		return nil, nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.LoginID] = u.DisplayName
	}
	titles := make(map[uint]string, len(songs))
	for _, sg := range songs {
		titles[sg.ID] = sg.Title
	}
	return names, titles, nil
}
