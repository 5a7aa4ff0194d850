// Package reconciler diffs validated sheet rows against the persisted
// catalog and turns the difference into create, update and delete
// operations applied in one transactional unit per category.
package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go

// Storage is catalog persistence.
type Storage interface {
	// FetchByKeys returns existing records of category whose business key
	// is in keys, in a single batched lookup.
	FetchByKeys(ctx context.Context, category models.Category, keys []string) (map[string]*models.CatalogRecord, error)
	// ApplyPlan applies the whole plan atomically. Rows rejected by the
	// store despite passing validation are skipped and counted as warnings.
	ApplyPlan(ctx context.Context, category models.Category, plan Plan) (models.SyncReport, error)
}

// Plan is the computed difference between incoming rows and the catalog.
type Plan struct {
	Creates []models.CatalogRecord
	Updates []models.CatalogRecord
	// Deletes holds business keys of existing records whose incoming row
	// was a deletion signal.
	Deletes []string
}

// Option is custom configuration of Reconciler.
type Option func(r *Reconciler)

// Reconciler reconciles validated rows into the catalog.
type Reconciler struct {
	storage Storage
	clock   Clock
}

// NewReconciler returns new Reconciler.
func NewReconciler(storage Storage, ops ...Option) *Reconciler {
	rec := &Reconciler{
		storage: storage,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(rec)
	}

	return rec
}

// Reconcile diffs records against the persisted catalog of category and
// applies the resulting plan. Rows without any real field change are
// no-ops and not counted as updated.
func (r *Reconciler) Reconcile(ctx context.Context, category models.Category, records []models.Record) (models.SyncReport, error) {
	keys := lo.Map(records, func(record models.Record, _ int) string {
		return record.VariantSKU
	})

	existing, err := r.storage.FetchByKeys(ctx, category, keys)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("can't fetch existing records: %w", err)
	}

	now := r.clock.Now()
	plan := BuildPlan(category, existing, records, now)

	report, err := r.storage.ApplyPlan(ctx, category, plan)
	if err != nil {
		return report, fmt.Errorf("can't apply changes: %w", err)
	}

	return report, nil
}

// BuildPlan computes the create/update/delete plan for records against the
// existing catalog state. The derived color_sku is recomputed for every
// created and updated record, updated_at is bumped only on real change.
func BuildPlan(
	category models.Category,
	existing map[string]*models.CatalogRecord,
	records []models.Record,
	now time.Time,
) Plan {
	var plan Plan

	for _, record := range records {
		current, exists := existing[record.VariantSKU]

		if record.Tombstone {
			if exists {
				plan.Deletes = append(plan.Deletes, record.VariantSKU)
			}
			continue
		}

		if !exists {
			plan.Creates = append(plan.Creates, models.CatalogRecord{
				Category:   category,
				VariantSKU: record.VariantSKU,
				ColorSKU:   record.ColorSKU,
				Values:     record.Values,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
			continue
		}

		if !recordChanged(current, record) {
			continue
		}

		updated := *current
		updated.ColorSKU = record.ColorSKU
		updated.Values = record.Values
		updated.UpdatedAt = now
		plan.Updates = append(plan.Updates, updated)
	}

	return plan
}

func recordChanged(current *models.CatalogRecord, record models.Record) bool {
	if current.ColorSKU != record.ColorSKU {
		return true
	}
	for name, value := range record.Values {
		if !value.Equal(current.Values[name]) {
			return true
		}
	}
	return false
}

// WithClock sets Reconciler's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Reconciler) {
		r.clock = c
	}
}
