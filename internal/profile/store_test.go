package profile_test

import (
	"database/sql"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/lumeaddon/lume/internal/profile"
)

func newTestStore(t *testing.T) (*profile.Store, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	store, err := profile.NewStore(logger, db)
	assert.NoError(t, err)
	return store, db
}

func Test_Store(t *testing.T) {

	t.Run("latest is nil before anything is saved", func(t *testing.T) {
		store, _ := newTestStore(t)

		p, err := store.Latest()
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("latest returns the most recently saved profile", func(t *testing.T) {
		store, _ := newTestStore(t)

		first := validProfile()
		_, err := store.Save(first)
		assert.NoError(t, err)

		second := validProfile()
		second.Dwell.Seconds = 120
		_, err = store.Save(second)
		assert.NoError(t, err)

		latest, err := store.Latest()
		assert.NoError(t, err)
		assert.NotNil(t, latest)
		assert.Equal(t, 120, latest.Dwell.Seconds)
		assert.Equal(t, second.Zones, latest.Zones)
	})

	t.Run("revisions come back newest first", func(t *testing.T) {
		store, _ := newTestStore(t)

		firstID, _ := store.Save(validProfile())
		secondID, _ := store.Save(validProfile())

		revisions, err := store.Revisions()
		assert.NoError(t, err)
		assert.Len(t, revisions, 2)
		assert.Equal(t, secondID, revisions[0].ID)
		assert.Equal(t, firstID, revisions[1].ID)
	})

	t.Run("a revision row that fails to scan is reported, not skipped", func(t *testing.T) {
		store, db := newTestStore(t)

		_, err := db.Exec("INSERT INTO profile_revision (id, created_at, body) VALUES ('rev-bad', 'not-a-time', '{}');")
		assert.NoError(t, err)

		revisions, err := store.Revisions()
		assert.Nil(t, revisions)
		assert.ErrorContains(t, err, "Error scanning profile revision")
	})
}
