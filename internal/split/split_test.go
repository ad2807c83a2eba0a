// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/recipe-kb/internal/artifact"
	"github.com/tdnguyen/recipe-kb/pkg/types"
)

func TestFileSplitsPerRecord(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ingredient_knowledge_base.json")
	kb := []types.Ingredient{
		{ID: "ingre00001", NameVI: "cà chua", NameNormalized: "ca chua", Synonyms: []string{"", "", ""}, Type: types.RecordIngredient},
		{ID: "ingre00002", NameVI: "muối", NameNormalized: "muoi", Synonyms: []string{"", "", ""}, Type: types.RecordIngredient},
	}
	require.NoError(t, artifact.Write(input, kb))

	outDir := filepath.Join(dir, "ingredients")
	summary, err := File(input, outDir, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Summary{Written: 2}, summary)
	assert.False(t, summary.HasFailures())

	got, err := artifact.Load[types.Ingredient](filepath.Join(outDir, "ingre00002.json"))
	require.NoError(t, err)
	assert.Equal(t, "muối", got.NameVI)
}

func TestFileSkipsRecordsWithoutID(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "kb.json")
	raw := `[{"id":"dish0001","name_vi":"Canh chua"},{"name_vi":"no id"},{"id":"","name_vi":"blank id"}]`
	require.NoError(t, os.WriteFile(input, []byte(raw), 0o644))

	outDir := filepath.Join(dir, "dishes")
	summary, err := File(input, outDir, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Summary{Written: 1, Skipped: 2}, summary)
	assert.True(t, summary.HasFailures())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	_, err := File(missing, t.TempDir(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestFileMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"not":"an array"`), 0o644))

	_, err := File(input, dir, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), input)
}
