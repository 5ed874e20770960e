//go:build !wasm

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaramap/swaramap/pkg/types"
)

// backends returns one fresh store per backend. PostgreSQL runs only when
// SWARAMAP_TEST_POSTGRES_DSN is set.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqliteFile, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	sqliteMem, err := NewSQLite(":memory:")
	require.NoError(t, err)

	stores := map[string]Store{
		"memory":        NewMemory(),
		"sqlite-file":   sqliteFile,
		"sqlite-memory": sqliteMem,
	}

	if dsn := os.Getenv("SWARAMAP_TEST_POSTGRES_DSN"); dsn != "" {
		pg, err := New(Config{Path: dsn})
		require.NoError(t, err)
		truncatePostgres(t, pg.(*PostgresStore))
		stores["postgres"] = pg
	}

	for _, s := range stores {
		t.Cleanup(func() { s.Close() })
	}
	return stores
}

func truncatePostgres(t *testing.T, s *PostgresStore) {
	t.Helper()
	for _, table := range Tables {
		_, err := s.pool.Exec(t.Context(), "TRUNCATE "+table)
		require.NoError(t, err)
	}
}

func testRegion(id, name string) *types.Region {
	return &types.Region{
		ID:   id,
		Name: name,
		Instruments: types.Instruments{
			Melodic:  []string{"Sarangi"},
			Rhythmic: []string{"Dholak"},
		},
		MusicalStructure: types.MusicalStructure{
			RhythmicSystem: "Moderate tempo",
			Tempo:          "80-120 BPM",
			Talas:          []string{"Keherwa"},
		},
		SocialContext: types.SocialContext{HereditaryTradition: true},
	}
}

func TestStore_Interface(t *testing.T) {
	var _ Store = (*MemoryStore)(nil)
	var _ Store = (*SQLiteStore)(nil)
	var _ Store = (*PostgresStore)(nil)
}

func TestStore_Regions(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AddRegion(testRegion("rajasthan", "Rajasthan")))
			require.NoError(t, s.AddRegion(testRegion("kerala", "Kerala")))

			got, err := s.GetRegion("rajasthan")
			require.NoError(t, err)
			assert.Equal(t, testRegion("rajasthan", "Rajasthan"), got)

			all, err := s.GetRegions()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "kerala", all[0].ID)
			assert.Equal(t, "rajasthan", all[1].ID)

			_, err = s.GetRegion("atlantis")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_RegionUpsert(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AddRegion(testRegion("rajasthan", "Rajasthan")))
			require.NoError(t, s.AddRegion(testRegion("rajasthan", "Marwar")))

			all, err := s.GetRegions()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "Marwar", all[0].Name)
		})
	}
}

func TestStore_AddRequiresID(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.AddRegion(nil))
			assert.Error(t, s.AddRegion(&types.Region{Name: "No ID"}))
			assert.Error(t, s.AddArtist(&types.Artist{}))
			assert.Error(t, s.AddNews(&types.News{}))
			assert.Error(t, s.AddState(&types.MapState{}))
		})
	}
}

func TestStore_Artists(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AddArtist(&types.Artist{ID: "gulab-khan", Name: "Gulab Khan", RegionID: "rajasthan"}))
			require.NoError(t, s.AddArtist(&types.Artist{ID: "bachchu", Name: "Bachchu", RegionID: "rajasthan"}))
			require.NoError(t, s.AddArtist(&types.Artist{ID: "mattannoor", Name: "Mattannoor", RegionID: "kerala"}))

			raj, err := s.GetArtists("rajasthan")
			require.NoError(t, err)
			require.Len(t, raj, 2)
			assert.Equal(t, "bachchu", raj[0].ID)
			assert.Equal(t, "gulab-khan", raj[1].ID)

			all, err := s.GetArtists("")
			require.NoError(t, err)
			assert.Len(t, all, 3)

			none, err := s.GetArtists("atlantis")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestStore_News(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AddNews(&types.News{ID: "b", Title: "Later", Region: "kerala", Date: "2025-05-01"}))
			require.NoError(t, s.AddNews(&types.News{ID: "a", Title: "Earlier", Region: "rajasthan", Date: "2025-01-10"}))
			require.NoError(t, s.AddNews(&types.News{ID: "c", Title: "Same day", Region: "kerala", Date: "2025-01-10", Featured: true}))

			news, err := s.GetNews()
			require.NoError(t, err)
			require.Len(t, news, 3)
			assert.Equal(t, "a", news[0].ID)
			assert.Equal(t, "c", news[1].ID)
			assert.True(t, news[1].Featured)
			assert.Equal(t, "b", news[2].ID)
		})
	}
}

func TestStore_States(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.AddState(&types.MapState{ID: "westBengal", Name: "West Bengal", Region: "bengal"}))
			require.NoError(t, s.AddState(&types.MapState{ID: "delhi", Name: "Delhi"}))

			states, err := s.GetStates()
			require.NoError(t, err)
			require.Len(t, states, 2)
			assert.Equal(t, "delhi", states[0].ID)
			assert.False(t, states[0].Clickable())
			assert.Equal(t, "bengal", states[1].Region)
		})
	}
}

func TestNew(t *testing.T) {
	s, err := New(Config{Path: MemoryPath})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = New(Config{Path: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = New(Config{Path: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
}

func TestIsPostgres(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"postgres://user@localhost/swaramap", true},
		{"postgresql://localhost/swaramap", true},
		{"catalog.db", false},
		{MemoryPath, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPostgres(tt.path), tt.path)
	}
}

func TestSQLite_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.AddRegion(testRegion("punjab", "Punjab")))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetRegion("punjab")
	require.NoError(t, err)
	assert.Equal(t, "Punjab", got.Name)
}
