package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// SaveCatalog inserts all rows of the catalog in one transaction. Existing
// rows and links are kept as they are and not counted.
func (r *Repository) SaveCatalog(ctx context.Context, catalog entities.Catalog) (counts entities.CatalogCounts, err error) {
	defer observe("save_catalog", time.Now(), &err)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	w := catalogWriter{tx: tx}

	for _, theme := range catalog.Themes {
		if err := w.insert(ctx, &counts.Themes, `INSERT INTO themes (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, theme); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("saving theme %q: %w", theme, err)
		}
	}

	for _, entry := range catalog.Names {
		n := entry.Name
		if err := w.insert(ctx, &counts.Names,
			`INSERT INTO names (firstname, lastname, gender) VALUES (?, ?, ?)
			ON CONFLICT (firstname, lastname) DO NOTHING`,
			n.Firstname, n.Lastname, string(n.Gender)); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("saving name %q: %w", n.FullName(), err)
		}
		if err := w.link(ctx, &counts.Links, nameSpec,
			"e.firstname = ? AND e.lastname = ?",
			[]any{n.Firstname, n.Lastname}, entry.Themes); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("linking name %q: %w", n.FullName(), err)
		}
	}

	for _, entry := range catalog.Features {
		f := entry.Feature
		if err := w.insert(ctx, &counts.Features,
			`INSERT INTO features (text_masc, text_fem, description, is_good) VALUES (?, ?, ?, ?)
			ON CONFLICT DO NOTHING`,
			f.TextMasc, f.TextFem, f.Description, f.IsGood); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("saving feature %q: %w", f.TextMasc, err)
		}
		if err := w.link(ctx, &counts.Links, featureSpec,
			"e.text_masc = ?",
			[]any{f.TextMasc}, entry.Themes); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("linking feature %q: %w", f.TextMasc, err)
		}
	}

	for _, entry := range catalog.Items {
		i := entry.Item
		if err := w.insert(ctx, &counts.Items,
			`INSERT INTO items (name, description) VALUES (?, ?) ON CONFLICT (name) DO NOTHING`,
			i.Name, i.Description); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("saving item %q: %w", i.Name, err)
		}
		if err := w.link(ctx, &counts.Links, itemSpec,
			"e.name = ?",
			[]any{i.Name}, entry.Themes); err != nil {
			return entities.CatalogCounts{}, fmt.Errorf("linking item %q: %w", i.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.CatalogCounts{}, fmt.Errorf("committing catalog: %w", err)
	}
	return counts, nil
}

// catalogWriter runs inserts inside one transaction and tallies inserted rows.
type catalogWriter struct {
	tx *sqlx.Tx
}

func (w catalogWriter) insert(ctx context.Context, counter *int, query string, args ...any) error {
	res, err := w.tx.ExecContext(ctx, w.tx.Rebind(query), args...)
	if err != nil {
		return err
	}
	return addAffected(counter, res)
}

// link connects the row matched by key to each named theme. Unknown themes
// are ignored.
func (w catalogWriter) link(ctx context.Context, counter *int, spec kindSpec, key string, keyArgs []any, themes []string) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, theme_id)
		SELECT e.id, th.id FROM %s e, themes th
		WHERE %s AND th.name = ?
		ON CONFLICT DO NOTHING`,
		spec.linkTable, spec.linkColumn, spec.table, key)
	query = w.tx.Rebind(query)

	for _, theme := range themes {
		args := append(append([]any{}, keyArgs...), theme)
		res, err := w.tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if err := addAffected(counter, res); err != nil {
			return err
		}
	}
	return nil
}

func addAffected(counter *int, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	*counter += int(n)
	return nil
}
