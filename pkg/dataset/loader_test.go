package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRegionsYAML = `regions:
  - id: rajasthan
    name: Rajasthan
    instruments:
      melodic: [Sarangi]
      rhythmic: [Dholak]
    musical_structure:
      rhythmic_system: Moderate tempo
      tempo: 80-120 BPM
  - id: kerala
    name: Kerala
    musical_structure:
      talas: [Adi Tala (8 beats)]
      tempo: Accelerating
`

func TestLoadBuiltin(t *testing.T) {
	ds, err := LoadBuiltin()
	require.NoError(t, err)

	assert.Len(t, ds.Regions, 10)
	assert.Len(t, ds.Artists, 11)
	assert.Len(t, ds.News, 7)
	assert.Len(t, ds.States, 18)

	require.NoError(t, Validate(ds), "built-in dataset must be consistent")

	raj := ds.Region("rajasthan")
	require.NotNil(t, raj)
	assert.Equal(t, "Rajasthan", raj.Name)
	assert.Contains(t, raj.Instruments.Melodic, "Sarangi")
	assert.Equal(t, "80-120 BPM", raj.MusicalStructure.Tempo)
	assert.True(t, raj.SocialContext.HereditaryTradition)

	up := ds.Region("uttarpradesh")
	require.NotNil(t, up)
	assert.Contains(t, up.MusicalStructure.Talas, "Teental (16 beats)")
}

func TestLoadBuiltin_ArtistsFor(t *testing.T) {
	ds, err := LoadBuiltin()
	require.NoError(t, err)

	artists := ds.ArtistsFor("rajasthan")
	require.Len(t, artists, 2)
	assert.Equal(t, "bachchu-manganiyar", artists[0].ID)
	assert.Empty(t, ds.ArtistsFor("nowhere"))
}

func TestLoadRegions_Valid(t *testing.T) {
	regions, err := LoadRegions([]byte(twoRegionsYAML))
	require.NoError(t, err)
	require.Len(t, regions, 2)

	assert.Equal(t, "rajasthan", regions[0].ID)
	assert.Equal(t, []string{"Sarangi"}, regions[0].Instruments.Melodic)
	assert.Equal(t, "Moderate tempo", regions[0].MusicalStructure.RhythmicSystem)
	assert.Nil(t, regions[1].Instruments.Melodic)
	assert.Equal(t, []string{"Adi Tala (8 beats)"}, regions[1].MusicalStructure.Talas)
}

func TestLoadRegions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "regions: [unclosed"},
		{name: "no regions", yaml: "artists:\n  - id: a\n    name: A\n"},
		{name: "empty", yaml: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRegions([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_NoSections(t *testing.T) {
	_, err := Parse([]byte("other: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no regions")
}

func TestLoader_WithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a/regions.yml": {Data: []byte(twoRegionsYAML)},
		"b/news.yaml": {Data: []byte(`news:
  - id: n1
    title: Concert
    category: concert
    region: kerala
    date: "2025-05-06"
`)},
		"README.md": {Data: []byte("# not yaml")},
	}

	ds, err := NewLoaderWithFS(fsys).Load()
	require.NoError(t, err)
	assert.Len(t, ds.Regions, 2)
	require.Len(t, ds.News, 1)
	assert.Equal(t, "kerala", ds.News[0].Region)
	assert.NoError(t, Validate(ds))
}

func TestLoader_WithFSBadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yml": {Data: []byte("regions: [")},
	}

	_, err := NewLoaderWithFS(fsys).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yml")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yml")
	require.NoError(t, os.WriteFile(path, []byte(twoRegionsYAML), 0o644))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Regions, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01-regions.yml", twoRegionsYAML)
	writeFile(t, dir, "nested/02-more.yaml", `regions:
  - id: bengal
    name: Bengal
`)
	writeFile(t, dir, "drafts/wip.yml", `regions:
  - id: draft
    name: Draft
`)
	writeFile(t, dir, ".hidden/skip.yml", `regions:
  - id: hidden
    name: Hidden
`)
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, IgnoreFile, "drafts/\n")

	ds, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)

	var ids []string
	for _, r := range ds.Regions {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"rajasthan", "kerala", "bengal"}, ids)
}

func TestLoadDir_BadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.yml", twoRegionsYAML)
	writeFile(t, dir, "broken.yml", "regions: [")

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yml")
}

func TestLoadDir_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.yml", twoRegionsYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDir(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Dispatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "regions.yml", twoRegionsYAML)

	builtin, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, builtin.Regions, 10)

	fromDir, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, fromDir.Regions, 2)

	fromFile, err := Load(context.Background(), filepath.Join(dir, "regions.yml"))
	require.NoError(t, err)
	assert.Len(t, fromFile.Regions, 2)

	_, err = Load(context.Background(), filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
