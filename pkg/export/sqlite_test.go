package export_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/notjagan/matchup/pkg/export"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func damageFactor(t *testing.T, ctx context.Context, path string, atk string, def string) int {
	t.Helper()

	db, err := export.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var factor int
	err = db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT e.damage_factor
		FROM pokemon_v2_typeefficacy e
		JOIN pokemon_v2_type a ON e.damage_type_id = a.id
		JOIN pokemon_v2_type d ON e.target_type_id = d.id
		WHERE a.name = ? AND d.name = ?
	`, atk, def).Scan(&factor)
	require.NoError(t, err)

	return factor
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chart.db")
	mdl := model.New()

	require.NoError(t, export.SQLite(ctx, mdl, path))

	db, err := export.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var types []struct {
		ID   int    `db:"id"`
		Name string `db:"name"`
	}
	require.NoError(t, db.SelectContext(ctx, &types, `SELECT id, name FROM pokemon_v2_type ORDER BY id`))
	require.Len(t, types, model.NumTypes)
	assert.Equal(t, 1, types[0].ID)
	assert.Equal(t, "normal", types[0].Name)
	assert.Equal(t, "fairy", types[model.NumTypes-1].Name)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pokemon_v2_typeefficacy`))
	assert.Equal(t, model.NumTypes*model.NumTypes, count)

	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pokemon_v2_typeefficacy WHERE damage_factor != 100`))
	assert.Equal(t, 120, count)

	assert.Equal(t, 200, damageFactor(t, ctx, path, "rock", "fire"))
	assert.Equal(t, 0, damageFactor(t, ctx, path, "normal", "ghost"))
	assert.Equal(t, 50, damageFactor(t, ctx, path, "water", "dragon"))
	assert.Equal(t, 100, damageFactor(t, ctx, path, "fire", "normal"))
}

func TestSQLiteReplacesPreviousExport(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chart.db")
	mdl := model.New()

	require.NoError(t, export.SQLite(ctx, mdl, path))
	require.NoError(t, export.SQLite(ctx, mdl, path))

	db, err := export.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pokemon_v2_typeefficacy`))
	assert.Equal(t, model.NumTypes*model.NumTypes, count)
}

func TestSQLiteBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "chart.db")
	assert.Error(t, export.SQLite(context.Background(), model.New(), path))
}
