package export

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/notjagan/matchup/pkg/logging"
	"github.com/notjagan/matchup/pkg/model"
)

// typeRow and efficacyRow follow the PokeAPI table layout so the dump can be
// queried alongside a PokeAPI database.
type typeRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type efficacyRow struct {
	DamageTypeID int `db:"damage_type_id"`
	TargetTypeID int `db:"target_type_id"`
	DamageFactor int `db:"damage_factor"`
}

func typeID(typ model.Type) int {
	return int(typ) + 1
}

// Open opens the SQLite database at path, creating it if needed.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}

	return db, nil
}

// SQLite writes every type and every attacker/defender pair of the chart,
// neutral pairs included, into the database at path. Existing tables are
// replaced in a single transaction.
func SQLite(ctx context.Context, mdl *model.Model, path string) error {
	logger := logging.GetLogger("export")

	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		/* sql */ `
		DROP TABLE IF EXISTS pokemon_v2_typeefficacy;
		DROP TABLE IF EXISTS pokemon_v2_type;
		CREATE TABLE pokemon_v2_type (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);
		CREATE TABLE pokemon_v2_typeefficacy (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			damage_type_id INTEGER NOT NULL REFERENCES pokemon_v2_type(id),
			target_type_id INTEGER NOT NULL REFERENCES pokemon_v2_type(id),
			damage_factor INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	typs := mdl.Types()
	types := make([]typeRow, len(typs))
	effs := make([]efficacyRow, 0, len(typs)*len(typs))
	for i, atk := range typs {
		types[i] = typeRow{ID: typeID(atk), Name: atk.String()}
		for _, def := range typs {
			lvl, err := mdl.Efficacy(atk, def)
			if err != nil {
				return fmt.Errorf("could not get efficacy of %q against %q: %w", atk, def, err)
			}
			effs = append(effs, efficacyRow{
				DamageTypeID: typeID(atk),
				TargetTypeID: typeID(def),
				DamageFactor: int(lvl),
			})
		}
	}

	_, err = tx.NamedExecContext(ctx,
		/* sql */ `
		INSERT INTO pokemon_v2_type (id, name)
		VALUES (:id, :name)
	`, types)
	if err != nil {
		return fmt.Errorf("failed to insert types: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx,
		/* sql */ `
		INSERT INTO pokemon_v2_typeefficacy (damage_type_id, target_type_id, damage_factor)
		VALUES (:damage_type_id, :target_type_id, :damage_factor)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare efficacy insert: %w", err)
	}
	defer stmt.Close()

	for _, eff := range effs {
		_, err = stmt.ExecContext(ctx, eff)
		if err != nil {
			return fmt.Errorf("failed to insert efficacy row: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}

	logger.Info().
		Str("path", path).
		Int("types", len(types)).
		Int("efficacies", len(effs)).
		Msg("Exported type chart")
	return nil
}
