package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/chargen/internal/domain/entities"
	"github.com/ersonp/chargen/internal/domain/ports"
	"github.com/ersonp/chargen/internal/infrastructure/parsers"
)

// Catalog sections, as named in seed documents.
const (
	SectionThemes   = "themes"
	SectionNames    = "names"
	SectionFeatures = "features"
	SectionItems    = "items"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate without saving
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Section string // Catalog section of the record
	Index   int    // Position in the section (1-indexed, 0 if unknown)
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("%s #%d: %s", e.Section, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Section, e.Message)
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Valid    entities.CatalogCounts // Records that passed validation
	Imported entities.CatalogCounts // Rows actually inserted
	Skipped  int                    // Valid rows that already existed
	Errors   []ImportError
}

// ImportService validates seed catalogs and writes them to the store.
type ImportService struct {
	writer  ports.CatalogWriter
	genders entities.GenderSet
	logger  *zap.Logger
}

// NewImportService creates a new import service.
func NewImportService(writer ports.CatalogWriter, genders entities.GenderSet, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		writer:  writer,
		genders: genders,
		logger:  logger,
	}
}

// Import validates a raw catalog and saves the valid records. Invalid records
// are reported in the result and skipped; they never abort the import.
func (s *ImportService) Import(ctx context.Context, raw *parsers.RawCatalog, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	catalog, validationErrors := s.validateCatalog(raw)
	result.Errors = validationErrors
	result.Valid = catalog.Counts()

	for _, e := range validationErrors {
		s.logger.Warn("skipping invalid record",
			zap.String("section", e.Section),
			zap.Int("index", e.Index),
			zap.String("field", e.Field),
			zap.String("reason", e.Message),
		)
	}

	if result.Valid.Total() == 0 {
		return result, nil
	}

	if opts.DryRun {
		result.Imported = result.Valid
		return result, nil
	}

	imported, err := s.writer.SaveCatalog(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	result.Imported = imported
	result.Skipped = result.Valid.Total() - imported.Total()

	s.logger.Info("catalog imported",
		zap.Int("themes", imported.Themes),
		zap.Int("names", imported.Names),
		zap.Int("features", imported.Features),
		zap.Int("items", imported.Items),
		zap.Int("links", imported.Links),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

// validateCatalog converts valid raw records to a catalog and collects
// errors for the rest.
func (s *ImportService) validateCatalog(raw *parsers.RawCatalog) (entities.Catalog, []ImportError) {
	var catalog entities.Catalog
	var errors []ImportError

	declared := make(map[string]struct{}, len(raw.Themes))
	for i, name := range raw.Themes {
		name = strings.TrimSpace(name)
		if name == "" {
			errors = append(errors, ImportError{Section: SectionThemes, Index: i + 1, Field: "name", Message: "theme name is empty"})
			continue
		}
		if _, ok := declared[name]; ok {
			continue
		}
		declared[name] = struct{}{}
		catalog.Themes = append(catalog.Themes, name)
	}

	names := make(uniqueKeys)
	for i := range raw.Names {
		entry, err := s.validateName(&raw.Names[i], declared)
		if err == nil {
			err = names.claim(SectionNames, raw.Names[i].Index, "name", entry.Name.FullName(),
				entry.Name.Firstname+"\x00"+entry.Name.Lastname)
		}
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		catalog.Names = append(catalog.Names, entry)
	}

	masc, fem := make(uniqueKeys), make(uniqueKeys)
	for i := range raw.Features {
		entry, err := validateFeature(&raw.Features[i], declared)
		if err == nil {
			err = masc.check(SectionFeatures, raw.Features[i].Index, "text_masc", entry.Feature.TextMasc, entry.Feature.TextMasc)
		}
		if err == nil {
			err = fem.check(SectionFeatures, raw.Features[i].Index, "text_fem", entry.Feature.TextFem, entry.Feature.TextFem)
		}
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		masc.add(entry.Feature.TextMasc, raw.Features[i].Index)
		fem.add(entry.Feature.TextFem, raw.Features[i].Index)
		catalog.Features = append(catalog.Features, entry)
	}

	items := make(uniqueKeys)
	for i := range raw.Items {
		entry, err := validateItem(&raw.Items[i], declared)
		if err == nil {
			err = items.claim(SectionItems, raw.Items[i].Index, "name", entry.Item.Name, entry.Item.Name)
		}
		if err != nil {
			errors = append(errors, *err)
			continue
		}
		catalog.Items = append(catalog.Items, entry)
	}

	return catalog, errors
}

func (s *ImportService) validateName(raw *parsers.RawName, declared map[string]struct{}) (entities.NameEntry, *ImportError) {
	if raw.Firstname == "" {
		return entities.NameEntry{}, &ImportError{Section: SectionNames, Index: raw.Index, Field: "firstname", Message: "missing required field: firstname"}
	}

	gender := entities.NormalizeGender(raw.Gender)
	if !s.genders.Contains(gender) {
		return entities.NameEntry{}, &ImportError{
			Section: SectionNames,
			Index:   raw.Index,
			Field:   "gender",
			Value:   raw.Gender,
			Message: fmt.Sprintf("invalid gender %q (valid: %s)", raw.Gender, s.genders),
		}
	}

	if err := checkThemes(SectionNames, raw.Index, raw.Themes, declared); err != nil {
		return entities.NameEntry{}, err
	}

	return entities.NameEntry{
		Name: entities.Name{
			Firstname: raw.Firstname,
			Lastname:  raw.Lastname,
			Gender:    gender,
		},
		Themes: raw.Themes,
	}, nil
}

func validateFeature(raw *parsers.RawFeature, declared map[string]struct{}) (entities.FeatureEntry, *ImportError) {
	if raw.TextMasc == "" {
		return entities.FeatureEntry{}, &ImportError{Section: SectionFeatures, Index: raw.Index, Field: "text_masc", Message: "missing required field: text_masc"}
	}
	if raw.TextFem == "" {
		return entities.FeatureEntry{}, &ImportError{Section: SectionFeatures, Index: raw.Index, Field: "text_fem", Message: "missing required field: text_fem"}
	}
	if raw.IsGood == nil {
		return entities.FeatureEntry{}, &ImportError{Section: SectionFeatures, Index: raw.Index, Field: "is_good", Message: "missing required field: is_good"}
	}

	if err := checkThemes(SectionFeatures, raw.Index, raw.Themes, declared); err != nil {
		return entities.FeatureEntry{}, err
	}

	return entities.FeatureEntry{
		Feature: entities.Feature{
			TextMasc:    raw.TextMasc,
			TextFem:     raw.TextFem,
			Description: raw.Description,
			IsGood:      *raw.IsGood,
		},
		Themes: raw.Themes,
	}, nil
}

func validateItem(raw *parsers.RawItem, declared map[string]struct{}) (entities.ItemEntry, *ImportError) {
	if raw.Name == "" {
		return entities.ItemEntry{}, &ImportError{Section: SectionItems, Index: raw.Index, Field: "name", Message: "missing required field: name"}
	}

	if err := checkThemes(SectionItems, raw.Index, raw.Themes, declared); err != nil {
		return entities.ItemEntry{}, err
	}

	return entities.ItemEntry{
		Item: entities.Item{
			Name:        raw.Name,
			Description: raw.Description,
		},
		Themes: raw.Themes,
	}, nil
}

// uniqueKeys maps a record key to the index of the record that first used it.
type uniqueKeys map[string]int

func (u uniqueKeys) check(section string, index int, field, value, key string) *ImportError {
	first, ok := u[key]
	if !ok {
		return nil
	}
	return &ImportError{
		Section: section,
		Index:   index,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("duplicate %s %q (first seen at #%d)", field, value, first),
	}
}

func (u uniqueKeys) add(key string, index int) {
	u[key] = index
}

// claim checks the key and records it when it is free.
func (u uniqueKeys) claim(section string, index int, field, value, key string) *ImportError {
	if err := u.check(section, index, field, value, key); err != nil {
		return err
	}
	u.add(key, index)
	return nil
}

// checkThemes rejects references to themes the document does not declare.
func checkThemes(section string, index int, themes []string, declared map[string]struct{}) *ImportError {
	for _, theme := range themes {
		if _, ok := declared[theme]; !ok {
			return &ImportError{
				Section: section,
				Index:   index,
				Field:   "themes",
				Value:   theme,
				Message: fmt.Sprintf("theme not registered: %q", theme),
			}
		}
	}
	return nil
}
