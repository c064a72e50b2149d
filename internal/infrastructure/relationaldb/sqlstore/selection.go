package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/infrastructure/metrics"
)

// kindSpec describes how one selectable kind is stored.
type kindSpec struct {
	label      string // plural noun used in errors and metrics
	table      string
	linkTable  string
	linkColumn string
	columns    string
}

var (
	themeSpec = kindSpec{
		label:   "themes",
		table:   "themes",
		columns: "id, name",
	}
	nameSpec = kindSpec{
		label:      "names",
		table:      "names",
		linkTable:  "name_themes",
		linkColumn: "name_id",
		columns:    "id, firstname, lastname, gender",
	}
	featureSpec = kindSpec{
		label:      "features",
		table:      "features",
		linkTable:  "feature_themes",
		linkColumn: "feature_id",
		columns:    "id, text_masc, text_fem, description, is_good",
	}
	itemSpec = kindSpec{
		label:      "items",
		table:      "items",
		linkTable:  "item_themes",
		linkColumn: "item_id",
		columns:    "id, name, description",
	}
)

// predicate is an extra kind-specific condition with a single argument.
type predicate struct {
	clause string
	arg    any
}

// themeExists keeps a row when it is linked to at least one named theme.
// EXISTS returns each row once regardless of how many themes match.
const themeExists = `EXISTS (
	SELECT 1 FROM %s l JOIN themes th ON th.id = l.theme_id
	WHERE l.%s = t.id AND th.name IN (?))`

// RandomFeatures returns up to count features of the given polarity.
func (r *Repository) RandomFeatures(ctx context.Context, count int, wantGood bool, themes entities.ThemeFilter) ([]entities.Feature, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", entities.ErrNegativeCount, count)
	}
	return selectRandom[entities.Feature](ctx, r, featureSpec, count, themes,
		predicate{clause: "t.is_good = ?", arg: wantGood},
	)
}

// RandomItems returns up to count items.
func (r *Repository) RandomItems(ctx context.Context, count int, themes entities.ThemeFilter) ([]entities.Item, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", entities.ErrNegativeCount, count)
	}
	return selectRandom[entities.Item](ctx, r, itemSpec, count, themes)
}

// RandomName returns one matching name, or nil when none match.
func (r *Repository) RandomName(ctx context.Context, gender entities.Gender, themes entities.ThemeFilter) (*entities.Name, error) {
	if err := r.genders.ValidateFilter(gender); err != nil {
		return nil, err
	}

	var preds []predicate
	if gender != entities.GenderAny {
		preds = append(preds, predicate{clause: "t.gender = ?", arg: string(gender)})
	}

	names, err := selectRandom[entities.Name](ctx, r, nameSpec, 1, themes, preds...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return &names[0], nil
}

// ListThemes returns every theme.
func (r *Repository) ListThemes(ctx context.Context) ([]entities.Theme, error) {
	return listAll[entities.Theme](ctx, r, themeSpec)
}

// ListNames returns every name.
func (r *Repository) ListNames(ctx context.Context) ([]entities.Name, error) {
	return listAll[entities.Name](ctx, r, nameSpec)
}

// ListFeatures returns every feature.
func (r *Repository) ListFeatures(ctx context.Context) ([]entities.Feature, error) {
	return listAll[entities.Feature](ctx, r, featureSpec)
}

// ListItems returns every item.
func (r *Repository) ListItems(ctx context.Context) ([]entities.Item, error) {
	return listAll[entities.Item](ctx, r, itemSpec)
}

// selectRandom draws up to count rows of a kind in random order. A zero count
// or a filter that matches nothing returns no rows without querying.
func selectRandom[T any](ctx context.Context, r *Repository, spec kindSpec, count int, themes entities.ThemeFilter, preds ...predicate) (_ []T, err error) {
	if count == 0 || themes.MatchesNothing() {
		return []T{}, nil
	}

	defer observe("random_"+spec.label, time.Now(), &err)

	conditions := make([]string, 0, len(preds)+1)
	args := make([]any, 0, len(preds)+2)
	for _, p := range preds {
		conditions = append(conditions, p.clause)
		args = append(args, p.arg)
	}
	if themes.Active() {
		conditions = append(conditions, fmt.Sprintf(themeExists, spec.linkTable, spec.linkColumn))
		args = append(args, themes.Names())
	}
	args = append(args, count)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s t", spec.columns, spec.table)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY random() LIMIT ?")

	query, args, err := sqlx.In(b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", spec.label, err)
	}

	out := []T{}
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("querying %s: %w", spec.label, err)
	}
	return out, nil
}

// listAll returns every row of a kind in insertion order.
func listAll[T any](ctx context.Context, r *Repository, spec kindSpec) (_ []T, err error) {
	defer observe("list_"+spec.label, time.Now(), &err)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", spec.columns, spec.table)

	out := []T{}
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("listing %s: %w", spec.label, err)
	}
	return out, nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.ObserveStoreQuery(operation, time.Since(start), *err)
}
