// Package syncer orchestrates full catalog synchronization runs. A run
// gathers all category sheets and image archives, validates everything up
// front and applies catalog and image changes only when every category
// passed without a single error.
package syncer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apparelshop/catalog-syncer/internal/imagecheck"
	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/rowcheck"
	"github.com/apparelshop/catalog-syncer/internal/sheet"
	"golang.org/x/sync/errgroup"

	"github.com/apparelshop/catalog-syncer/internal/fieldparse"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name ArchiveStore --filename archive_store.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Reconciler --filename reconciler.go
//go:generate mockery --name ImageSyncer --filename image_syncer.go

// Fetcher fetches sheet exports.
type Fetcher interface {
	FetchSheet(ctx context.Context, url string) (io.ReadCloser, error)
}

// ArchiveStore reads staged image archives.
type ArchiveStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Storage is catalog metadata and change log storage.
type Storage interface {
	// ExpectedImages returns expected image counts per color_sku of category.
	ExpectedImages(ctx context.Context, category models.Category) (map[string]int, error)
	// AppendChangeLog appends one entry to the change log.
	AppendChangeLog(ctx context.Context, entry models.ChangeEntry) error
}

// Reconciler applies validated records to the catalog.
type Reconciler interface {
	Reconcile(ctx context.Context, category models.Category, records []models.Record) (models.SyncReport, error)
}

// ImageSyncer syncs image archives into object storage.
type ImageSyncer interface {
	// Upload writes every archive file into object storage.
	Upload(ctx context.Context, category models.Category, archiveBytes []byte) (added, replaced int, err error)
	// Cleanup deletes stored objects not matching expectedKeys.
	Cleanup(ctx context.Context, category models.Category, expectedKeys map[string]struct{}) (deleted, warnings int, err error)
}

// Command describes one synchronization run.
type Command struct {
	ActorID    int64
	ActorName  string
	SheetURLs  map[models.Category]string
	// ArchiveKeys holds staged archive object keys. Categories without an
	// entry keep their stored images untouched.
	ArchiveKeys map[models.Category]string
}

const actionFullSync = "full_sync"

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer runs catalog synchronization.
type Syncer struct {
	fetcher    Fetcher
	archives   ArchiveStore
	storage    Storage
	reconciler Reconciler
	images     ImageSyncer
	clock      Clock
}

// NewSyncer returns new Syncer.
func NewSyncer(
	fetcher Fetcher,
	archives ArchiveStore,
	storage Storage,
	reconciler Reconciler,
	images ImageSyncer,
	ops ...Option,
) *Syncer {
	syn := &Syncer{
		fetcher:    fetcher,
		archives:   archives,
		storage:    storage,
		reconciler: reconciler,
		images:     images,
		clock:      systemClock{},
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

type gathered struct {
	records     []models.Record
	sheetErrors models.SheetErrors
	archive     []byte
	imageReport *models.ImageReport
}

// SyncAll runs one full synchronization of all categories. Sheets and
// archives are gathered and validated first; a single validation error in
// any category rejects the whole run without touching the catalog.
func (s *Syncer) SyncAll(ctx context.Context, cmd Command) (*models.SyncResult, error) {
	categories := models.Categories()
	results := make([]gathered, len(categories))

	errGroup, egCtx := errgroup.WithContext(ctx)
	for ix := range categories {
		ix := ix
		errGroup.Go(func() error {
			category := categories[ix]
			g, err := s.gatherCategory(egCtx, category, cmd.SheetURLs[category], cmd.ArchiveKeys[category])
			if err != nil {
				return err
			}
			results[ix] = *g
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	sheetIssues, imageIssues := countIssues(results)
	if sheetIssues > 0 || imageIssues > 0 {
		return s.rejectRun(ctx, cmd, categories, results, sheetIssues, imageIssues)
	}

	result := &models.SyncResult{
		Reports: make(map[models.Category]models.SyncReport, len(categories)),
		Images:  make(map[models.Category]models.ImageSyncReport),
	}

	for ix, category := range categories {
		report, err := s.reconciler.Reconcile(ctx, category, results[ix].records)
		if err != nil {
			return nil, fmt.Errorf("can't reconcile %s: %w", category, err)
		}
		result.Reports[category] = report

		if len(results[ix].archive) == 0 {
			continue
		}

		imageReport, err := s.syncImages(ctx, category, results[ix].archive)
		if err != nil {
			return nil, fmt.Errorf("can't sync %s images: %w", category, err)
		}
		result.Images[category] = imageReport
	}

	for _, category := range categories {
		if err := s.appendChangeLog(ctx, cmd, describeCategory(category, result.Reports[category])); err != nil {
			return result, err
		}
	}

	if err := s.appendChangeLog(ctx, cmd, describeRun(categories, result)); err != nil {
		return result, err
	}

	return result, nil
}

// ValidatePreview validates the category sheet without touching the catalog.
func (s *Syncer) ValidatePreview(ctx context.Context, category models.Category, sheetURL string) (*models.SheetErrors, error) {
	rows, err := s.fetchRows(ctx, sheetURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch %s sheet: %w", category, err)
	}

	validator, err := rowcheck.NewValidator(category)
	if err != nil {
		return nil, fmt.Errorf("can't build %s validator: %w", category, err)
	}

	_, issues := validator.ValidateSheet(rows)

	return &models.SheetErrors{
		TotalRows: len(rows),
		Errors:    issues,
	}, nil
}

// PreviewImages validates the staged archive against a freshly fetched
// sheet without touching storage. Expected counts come from the sheet, not
// from the catalog, so the preview works before the first import.
func (s *Syncer) PreviewImages(ctx context.Context, category models.Category, sheetURL, archiveKey string) (*models.ImageReport, error) {
	rows, err := s.fetchRows(ctx, sheetURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch %s sheet: %w", category, err)
	}

	archive, err := s.fetchArchive(ctx, archiveKey)
	if err != nil {
		return nil, fmt.Errorf("can't fetch %s archive: %w", category, err)
	}

	return imagecheck.Validate(category, archive, expectedFromRows(rows)), nil
}

// gatherCategory fetches and validates one category's sheet and archive.
// Unavailable sources (missing url, fetch or decode failure) become a single
// category-level issue so the run is rejected instead of partially applied.
func (s *Syncer) gatherCategory(ctx context.Context, category models.Category, sheetURL, archiveKey string) (*gathered, error) {
	if sheetURL == "" {
		return categoryFailure(category, "missing sheet url"), nil
	}

	rows, err := s.fetchRows(ctx, sheetURL)
	if err != nil {
		return categoryFailure(category, fmt.Sprintf("can't fetch sheet: %s", err)), nil
	}

	validator, err := rowcheck.NewValidator(category)
	if err != nil {
		return nil, fmt.Errorf("can't build %s validator: %w", category, err)
	}

	records, issues := validator.ValidateSheet(rows)
	g := &gathered{
		records: records,
		sheetErrors: models.SheetErrors{
			TotalRows: len(rows),
			Errors:    issues,
		},
	}

	if archiveKey == "" {
		return g, nil
	}

	archive, err := s.fetchArchive(ctx, archiveKey)
	if err != nil {
		g.imageReport = &models.ImageReport{
			Errors: []models.ValidationIssue{{
				Key:      string(category),
				Messages: []string{fmt.Sprintf("can't fetch archive: %s", err)},
			}},
		}
		return g, nil
	}

	g.archive = archive
	g.imageReport = imagecheck.Validate(category, archive, expectedFromRecords(records))

	return g, nil
}

func categoryFailure(category models.Category, message string) *gathered {
	return &gathered{
		sheetErrors: models.SheetErrors{
			Errors: []models.ValidationIssue{{
				Key:      string(category),
				Messages: []string{message},
			}},
		},
	}
}

func (s *Syncer) fetchRows(ctx context.Context, sheetURL string) ([]models.Row, error) {
	sheetFile, err := s.fetcher.FetchSheet(ctx, sheetURL)
	if err != nil {
		return nil, err
	}
	defer sheetFile.Close()

	rows, err := sheet.Decode(sheetFile)
	if err != nil {
		return nil, fmt.Errorf("can't decode sheet: %w", err)
	}

	return rows, nil
}

func (s *Syncer) fetchArchive(ctx context.Context, key string) ([]byte, error) {
	content, err := s.archives.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer content.Close()

	archive, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("can't read archive %q: %w", key, err)
	}

	return archive, nil
}

func (s *Syncer) syncImages(ctx context.Context, category models.Category, archive []byte) (models.ImageSyncReport, error) {
	expectedCounts, err := s.storage.ExpectedImages(ctx, category)
	if err != nil {
		return models.ImageSyncReport{}, fmt.Errorf("can't get expected image counts: %w", err)
	}

	added, replaced, err := s.images.Upload(ctx, category, archive)
	if err != nil {
		return models.ImageSyncReport{}, fmt.Errorf("can't upload images: %w", err)
	}

	deleted, warnings, err := s.images.Cleanup(ctx, category, expandImageKeys(expectedCounts))
	if err != nil {
		return models.ImageSyncReport{}, fmt.Errorf("can't clean up images: %w", err)
	}

	return models.ImageSyncReport{
		Added:    added,
		Replaced: replaced,
		Deleted:  deleted,
		Warnings: warnings,
	}, nil
}

func (s *Syncer) rejectRun(
	ctx context.Context,
	cmd Command,
	categories []models.Category,
	results []gathered,
	sheetIssues, imageIssues int,
) (*models.SyncResult, error) {
	result := &models.SyncResult{
		Rejected:    true,
		SheetErrors: make(map[models.Category]models.SheetErrors, len(categories)),
		ImageErrors: make(map[models.Category]*models.ImageReport),
	}

	for ix, category := range categories {
		result.SheetErrors[category] = results[ix].sheetErrors
		if results[ix].imageReport != nil {
			result.ImageErrors[category] = results[ix].imageReport
		}
	}

	description := fmt.Sprintf("synchronization rejected: %d sheet issues, %d image issues", sheetIssues, imageIssues)
	if err := s.appendChangeLog(ctx, cmd, description); err != nil {
		return result, err
	}

	return result, nil
}

func (s *Syncer) appendChangeLog(ctx context.Context, cmd Command, description string) error {
	entry := models.ChangeEntry{
		AuthorID:    cmd.ActorID,
		AuthorName:  cmd.ActorName,
		ActionType:  actionFullSync,
		Description: description,
		Timestamp:   s.clock.Now(),
	}

	if err := s.storage.AppendChangeLog(ctx, entry); err != nil {
		return fmt.Errorf("can't append change log entry: %w", err)
	}

	return nil
}

func countIssues(results []gathered) (sheetIssues, imageIssues int) {
	for ix := range results {
		sheetIssues += len(results[ix].sheetErrors.Errors)
		if results[ix].imageReport != nil {
			imageIssues += len(results[ix].imageReport.Errors)
		}
	}
	return sheetIssues, imageIssues
}

func describeCategory(category models.Category, report models.SyncReport) string {
	return fmt.Sprintf(
		"%s synchronization finished: %d added, %d updated, %d deleted, %d warnings",
		category, report.Added, report.Updated, report.Deleted, report.Warnings,
	)
}

func describeRun(categories []models.Category, result *models.SyncResult) string {
	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		report := result.Reports[category]
		parts = append(parts, fmt.Sprintf(
			"%s: %d added, %d updated, %d deleted, %d warnings",
			category, report.Added, report.Updated, report.Deleted, report.Warnings,
		))
	}
	return "synchronization finished: " + strings.Join(parts, "; ")
}

// expectedFromRecords builds expected image counts per color_sku from
// validated records. Tombstones carry no counts and are skipped.
func expectedFromRecords(records []models.Record) map[string]int {
	expected := make(map[string]int, len(records))
	for ix := range records {
		if records[ix].Tombstone || records[ix].ColorSKU == "" {
			continue
		}
		count, ok := records[ix].Values["count_images"]
		if !ok || !count.Valid {
			continue
		}
		expected[records[ix].ColorSKU] = int(count.Int)
	}
	return expected
}

// expectedFromRows builds expected image counts per color_sku straight from
// raw sheet rows. Rows without a usable key or count are skipped.
func expectedFromRows(rows []models.Row) map[string]int {
	expected := make(map[string]int, len(rows))
	for _, row := range rows {
		sku, worldSKU := row.Get("sku"), row.Get("world_sku")
		if sku == "" || worldSKU == "" {
			continue
		}
		count, err := fieldparse.ParseInt(row.Get("count_images"))
		if err != nil || count < 0 {
			continue
		}
		expected[sku+"_"+worldSKU] = int(count)
	}
	return expected
}

// expandImageKeys expands per-color expected counts into the full set of
// expected object base names ({color_sku}_{index}).
func expandImageKeys(counts map[string]int) map[string]struct{} {
	keys := make(map[string]struct{}, len(counts))
	for colorSKU, count := range counts {
		for ix := 1; ix <= count; ix++ {
			keys[fmt.Sprintf("%s_%d", colorSKU, ix)] = struct{}{}
		}
	}
	return keys
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}
