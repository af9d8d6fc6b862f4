package services

import (
	"testing"
	"time"

	"facebeat/app/models"
	"facebeat/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type scoreFixture struct {
	svc    *ScoreService
	scores *repo.ScoreRepository
	songs  *repo.SongRepository
	users  *repo.UserRepository
	db     *gorm.DB
}

func newScoreFixture(t *testing.T) *scoreFixture {
	gdb := newTestDB(t)
	scores := repo.NewScoreRepository(gdb)
	songs := repo.NewSongRepository(gdb)
	users := repo.NewUserRepository(gdb)
	return &scoreFixture{
		svc:    NewScoreService(scores, songs, users),
		scores: scores,
		songs:  songs,
		users:  users,
		db:     gdb,
	}
}

func (f *scoreFixture) addSong(t *testing.T, title string) *models.Song {
	t.Helper()
	s := &models.Song{Title: title, Artist: "artist", BPM: 120, Difficulty: 3, FilePath: "/songs/" + title + ".mp3"}
	require.NoError(t, f.songs.Create(s))
	return s
}

func (f *scoreFixture) addUser(t *testing.T, loginID, name string) {
	t.Helper()
	require.NoError(t, f.users.Create(&models.User{LoginID: loginID, DisplayName: name, PasswordHash: "x", Role: "user"}))
}

func (f *scoreFixture) addScore(t *testing.T, userID string, songID uint, value int, at time.Time) {
	t.Helper()
	require.NoError(t, f.scores.Create(&models.Score{UserID: userID, SongID: songID, Value: value, CreatedAt: at}))
}

func TestSubmitAppendsOneRow(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	sc, err := f.svc.Submit("player1", song.ID, 4200)
	require.NoError(t, err)
	assert.NotZero(t, sc.ID)
	assert.False(t, sc.CreatedAt.IsZero())

	rows, err := f.scores.TopN(10, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "player1", rows[0].UserID)
	assert.Equal(t, 4200, rows[0].Value)
}

func TestSubmitUnknownSong(t *testing.T) {
	f := newScoreFixture(t)

	_, err := f.svc.Submit("player1", 999, 100)
	assert.ErrorIs(t, err, ErrUnknownSong)

	rows, err := f.scores.TopN(10, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSubmitRejectsNegativeScore(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	_, err := f.svc.Submit("player1", song.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidScore)

	rows, err := f.scores.TopN(10, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSubmitAcceptsUnregisteredUser(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	// user references are opaque; no account is required to record a play
	_, err := f.svc.Submit("ghost", song.ID, 10)
	assert.NoError(t, err)
}

func TestTopNTieBrokenByEarlierSubmission(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")
	f.addUser(t, "A", "Alice")
	f.addUser(t, "B", "Bob")
	f.addUser(t, "C", "Carol")

	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.addScore(t, "A", song.ID, 100, t0.Add(time.Minute))
	f.addScore(t, "B", song.ID, 100, t0)
	f.addScore(t, "C", song.ID, 90, t0.Add(2*time.Minute))

	entries, err := f.svc.TopN(3, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"B", "A", "C"}, []string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, "Bob", entries[0].DisplayName)
	assert.Equal(t, "neon", entries[0].SongTitle)
}

func TestTopNNeverExceedsLimit(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.addScore(t, "p", song.ID, 100+i, base.Add(time.Duration(i)*time.Second))
	}

	entries, err := f.svc.TopN(3, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 104, entries[0].Score)
}

func TestTopNIsDeterministic(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// identical value and timestamp; insert order is the final key
	f.addScore(t, "first", song.ID, 50, at)
	f.addScore(t, "second", song.ID, 50, at)

	a, err := f.svc.TopN(10, nil)
	require.NoError(t, err)
	b, err := f.svc.TopN(10, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "first", a[0].UserID)
}

func TestTopNFilteredBySong(t *testing.T) {
	f := newScoreFixture(t)
	neon := f.addSong(t, "neon")
	pulse := f.addSong(t, "pulse")

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.addScore(t, "A", neon.ID, 100, base)
	f.addScore(t, "B", pulse.ID, 999, base)

	entries, err := f.svc.TopN(10, &neon.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].UserID)
	assert.Equal(t, "neon", entries[0].SongTitle)
}

func TestTopNUnknownSongFilter(t *testing.T) {
	f := newScoreFixture(t)

	missing := uint(42)
	_, err := f.svc.TopN(10, &missing)
	assert.ErrorIs(t, err, ErrUnknownSong)
}

func TestTopNEmptyLedgerIsNotAnError(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")

	entries, err := f.svc.TopN(10, &song.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTopNResolvesNamesAtReadTime(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")
	f.addUser(t, "A", "Old Name")
	f.addScore(t, "A", song.ID, 100, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	entries, err := f.svc.TopN(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Old Name", entries[0].DisplayName)

	// renaming retroactively changes the board without touching the ledger
	require.NoError(t, f.db.Model(&models.User{}).Where("login_id = ?", "A").Update("display_name", "New Name").Error)

	entries, err = f.svc.TopN(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "New Name", entries[0].DisplayName)
}

func TestTopNFallsBackToRawIDForUnknownUser(t *testing.T) {
	f := newScoreFixture(t)
	song := f.addSong(t, "neon")
	f.addScore(t, "ghost", song.ID, 70, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	entries, err := f.svc.TopN(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "ghost", entries[0].DisplayName)
}
