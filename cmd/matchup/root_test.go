package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/notjagan/matchup/pkg/bot"
	"github.com/notjagan/matchup/pkg/export"
	"github.com/notjagan/matchup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAttackJSON(t *testing.T) {
	out, err := execute(t, "attack", "ghost", "--format", "json")
	require.NoError(t, err)

	var got model.AttackOptions
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []model.TypeEfficacy{
		{Type: model.TypeGhost, Level: model.SuperEffective},
		{Type: model.TypeDark, Level: model.SuperEffective},
	}, got.SuperEffective)
	assert.Equal(t, model.TypeNormal, got.NotVeryEffective[0].Type)
	assert.Equal(t, model.Immune, got.NotVeryEffective[0].Level)
}

func TestAttackText(t *testing.T) {
	out, err := execute(t, "attack", "fire", "flying", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Super effective")
	assert.Contains(t, out, "4x")
	assert.Contains(t, out, "Rock")
	assert.NotContains(t, out, "\x1b[")
}

func TestAttackCallerErrors(t *testing.T) {
	_, err := execute(t, "attack", "fire", "water", "grass")
	assert.ErrorIs(t, err, model.ErrTypeComboSize)

	_, err = execute(t, "attack", "shadow")
	assert.ErrorIs(t, err, model.ErrUnknownType)

	_, err = execute(t, "attack")
	assert.Error(t, err)
}

func TestDefendJSON(t *testing.T) {
	out, err := execute(t, "defend", "water", "-f", "json")
	require.NoError(t, err)

	var got struct {
		Resistant []struct {
			Category string `json:"category"`
		} `json:"resistant"`
		Vulnerable []struct {
			Category string `json:"category"`
		} `json:"vulnerable"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	var resistant, vulnerable []string
	for _, r := range got.Resistant {
		resistant = append(resistant, r.Category)
	}
	for _, v := range got.Vulnerable {
		vulnerable = append(vulnerable, v.Category)
	}
	assert.Equal(t, []string{"water", "grass", "dragon"}, resistant)
	assert.Equal(t, []string{"fire", "ground", "rock"}, vulnerable)
}

func TestTypesJSON(t *testing.T) {
	out, err := execute(t, "types", "--format", "json")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, model.TypeStrings(), names)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "types", "--format", "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.db")

	out, err := execute(t, "export", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	ctx := context.Background()
	db, err := export.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pokemon_v2_type`))
	assert.Equal(t, model.NumTypes, count)
}

func TestBotRequiresToken(t *testing.T) {
	t.Setenv("MATCHUP_DISCORD_TOKEN", "")

	_, err := execute(t, "bot")
	assert.ErrorIs(t, err, bot.ErrMissingToken)
}
