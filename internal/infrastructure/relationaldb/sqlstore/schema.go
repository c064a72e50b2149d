package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/ersonp/chargen/internal/infrastructure/config"
)

const schemaTemplate = `
	-- Themes (tags scoping every other kind)
	CREATE TABLE IF NOT EXISTS themes (
		id %[1]s,
		name TEXT NOT NULL UNIQUE
	);

	-- Names
	CREATE TABLE IF NOT EXISTS names (
		id %[1]s,
		firstname TEXT NOT NULL,
		lastname TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL CHECK (gender IN (%[2]s)),
		UNIQUE(firstname, lastname)
	);
	CREATE INDEX IF NOT EXISTS idx_names_gender ON names(gender);

	-- Features (personality traits, positive or negative)
	CREATE TABLE IF NOT EXISTS features (
		id %[1]s,
		text_masc TEXT NOT NULL UNIQUE,
		text_fem TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		is_good BOOLEAN NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_features_is_good ON features(is_good);

	-- Items
	CREATE TABLE IF NOT EXISTS items (
		id %[1]s,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	);

	-- Theme links
	CREATE TABLE IF NOT EXISTS name_themes (
		name_id BIGINT NOT NULL REFERENCES names(id) ON DELETE CASCADE,
		theme_id BIGINT NOT NULL REFERENCES themes(id) ON DELETE CASCADE,
		PRIMARY KEY (name_id, theme_id)
	);
	CREATE INDEX IF NOT EXISTS idx_name_themes_theme ON name_themes(theme_id);

	CREATE TABLE IF NOT EXISTS feature_themes (
		feature_id BIGINT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
		theme_id BIGINT NOT NULL REFERENCES themes(id) ON DELETE CASCADE,
		PRIMARY KEY (feature_id, theme_id)
	);
	CREATE INDEX IF NOT EXISTS idx_feature_themes_theme ON feature_themes(theme_id);

	CREATE TABLE IF NOT EXISTS item_themes (
		item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		theme_id BIGINT NOT NULL REFERENCES themes(id) ON DELETE CASCADE,
		PRIMARY KEY (item_id, theme_id)
	);
	CREATE INDEX IF NOT EXISTS idx_item_themes_theme ON item_themes(theme_id);
	`

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.schema()); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// schema renders the DDL for the configured driver. The gender CHECK is
// built from the configured gender set.
func (r *Repository) schema() string {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.driver == config.DriverPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	values := r.genders.Values()
	quoted := make([]string, len(values))
	for i, g := range values {
		quoted[i] = "'" + strings.ReplaceAll(string(g), "'", "''") + "'"
	}

	return fmt.Sprintf(schemaTemplate, idColumn, strings.Join(quoted, ", "))
}
