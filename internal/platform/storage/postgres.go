package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/table"
	"github.com/apparelshop/catalog-syncer/internal/reconciler"
	"github.com/lib/pq"

	pgmodels "github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for catalog records and change logs.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// FetchByKeys returns existing records of category keyed by variant_sku.
// Keys absent from the catalog are simply missing from the result.
func (p Postgres) FetchByKeys(ctx context.Context, category models.Category, keys []string) (map[string]*models.CatalogRecord, error) {
	result := make(map[string]*models.CatalogRecord, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	ids := make([]pg.Expression, 0, len(keys))
	for ix := range keys {
		ids = append(ids, pg.String(keys[ix]))
	}

	records, err := fetchRecords(ctx, p.db, category, ids)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't select %s records: %w", category, err)
	}

	for ix := range records {
		result[records[ix].VariantSKU] = records[ix]
	}

	return result, nil
}

// ApplyPlan applies the whole plan in one transaction. Creates and updates
// rejected by database constraints are rolled back to a per-row savepoint
// and reported as warnings instead of failing the transaction.
func (p Postgres) ApplyPlan(ctx context.Context, category models.Category, plan reconciler.Plan) (models.SyncReport, error) {
	var report models.SyncReport

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for ix := range plan.Creates {
			record := &plan.Creates[ix]
			applied, err := applyGuarded(ctx, tx, record.VariantSKU, &report, func() error {
				return insertRecord(ctx, tx, record)
			})
			if err != nil {
				return fmt.Errorf("can't insert record %q: %w", record.VariantSKU, err)
			}
			if applied {
				report.Added++
			}
		}

		for ix := range plan.Updates {
			record := &plan.Updates[ix]
			applied, err := applyGuarded(ctx, tx, record.VariantSKU, &report, func() error {
				return updateRecord(ctx, tx, record)
			})
			if err != nil {
				return fmt.Errorf("can't update record %q: %w", record.VariantSKU, err)
			}
			if applied {
				report.Updated++
			}
		}

		deleted, err := deleteRecords(ctx, tx, category, plan.Deletes)
		if err != nil {
			return fmt.Errorf("can't delete records: %w", err)
		}
		report.Deleted = deleted

		return nil
	})
	if err != nil {
		return models.SyncReport{}, err
	}

	return report, nil
}

// ExpectedImages returns expected image counts per color_sku of category.
// Records without color_sku are skipped.
func (p Postgres) ExpectedImages(ctx context.Context, category models.Category) (map[string]int, error) {
	records, err := fetchImageCounts(ctx, p.db, category)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't select %s image counts: %w", category, err)
	}

	expected := make(map[string]int, len(records))
	for ix := range records {
		value, ok := records[ix].Values["count_images"]
		if records[ix].ColorSKU == "" || !ok {
			continue
		}
		expected[records[ix].ColorSKU] = int(value.Int)
	}

	return expected, nil
}

// AppendChangeLog appends one entry to the change log.
func (p Postgres) AppendChangeLog(ctx context.Context, entry models.ChangeEntry) error {
	_, err := table.ChangeLogs.INSERT(table.ChangeLogs.MutableColumns).
		MODEL(toDBChangeLog(&entry)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert change log entry: %w", err)
	}

	return nil
}

// applyGuarded runs op inside a savepoint. A constraint miss rolls back to
// the savepoint, records a warning against key and lets the transaction
// continue. Any other error aborts the transaction.
func applyGuarded(ctx context.Context, tx *sql.Tx, key string, report *models.SyncReport, op func() error) (bool, error) {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT row_apply"); err != nil {
		return false, fmt.Errorf("can't create savepoint: %w", err)
	}

	if err := op(); err != nil {
		if !isConstraintMiss(err) {
			return false, err
		}
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT row_apply"); rbErr != nil {
			return false, fmt.Errorf("can't rollback to savepoint: %w", rbErr)
		}
		report.Warnings++
		report.WarningKeys = append(report.WarningKeys, key)
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT row_apply"); err != nil {
		return false, fmt.Errorf("can't release savepoint: %w", err)
	}

	return true, nil
}

// isConstraintMiss reports whether err is a data exception (class 22) or an
// integrity constraint violation (class 23) raised by Postgres.
func isConstraintMiss(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	class := pqErr.Code.Class()
	return class == "22" || class == "23"
}

func fetchRecords(ctx context.Context, db qrm.Queryable, category models.Category, ids []pg.Expression) ([]*models.CatalogRecord, error) {
	switch category {
	case models.CategoryShoes:
		var rows []pgmodels.Shoes
		err := table.Shoes.SELECT(table.Shoes.AllColumns).
			WHERE(table.Shoes.VariantSku.IN(ids...)).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBShoes(&rows[ix]))
		}
		return records, nil
	case models.CategoryClothing:
		var rows []pgmodels.Clothing
		err := table.Clothing.SELECT(table.Clothing.AllColumns).
			WHERE(table.Clothing.VariantSku.IN(ids...)).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBClothing(&rows[ix]))
		}
		return records, nil
	case models.CategoryAccessories:
		var rows []pgmodels.Accessories
		err := table.Accessories.SELECT(table.Accessories.AllColumns).
			WHERE(table.Accessories.VariantSku.IN(ids...)).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBAccessories(&rows[ix]))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}

func fetchImageCounts(ctx context.Context, db qrm.Queryable, category models.Category) ([]*models.CatalogRecord, error) {
	switch category {
	case models.CategoryShoes:
		var rows []pgmodels.Shoes
		err := table.Shoes.SELECT(table.Shoes.AllColumns).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBShoes(&rows[ix]))
		}
		return records, nil
	case models.CategoryClothing:
		var rows []pgmodels.Clothing
		err := table.Clothing.SELECT(table.Clothing.AllColumns).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBClothing(&rows[ix]))
		}
		return records, nil
	case models.CategoryAccessories:
		var rows []pgmodels.Accessories
		err := table.Accessories.SELECT(table.Accessories.AllColumns).
			QueryContext(ctx, db, &rows)
		if err != nil {
			return nil, err
		}
		records := make([]*models.CatalogRecord, 0, len(rows))
		for ix := range rows {
			records = append(records, fromDBAccessories(&rows[ix]))
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}

func insertRecord(ctx context.Context, db qrm.DB, record *models.CatalogRecord) error {
	var err error
	switch record.Category {
	case models.CategoryShoes:
		_, err = table.Shoes.INSERT(table.Shoes.MutableColumns).
			MODEL(toDBShoes(record)).
			ExecContext(ctx, db)
	case models.CategoryClothing:
		_, err = table.Clothing.INSERT(table.Clothing.MutableColumns).
			MODEL(toDBClothing(record)).
			ExecContext(ctx, db)
	case models.CategoryAccessories:
		_, err = table.Accessories.INSERT(table.Accessories.MutableColumns).
			MODEL(toDBAccessories(record)).
			ExecContext(ctx, db)
	default:
		err = fmt.Errorf("unknown category %q", record.Category)
	}
	return err
}

func updateRecord(ctx context.Context, db qrm.DB, record *models.CatalogRecord) error {
	var err error
	switch record.Category {
	case models.CategoryShoes:
		columnList := table.Shoes.MutableColumns.Except(table.Shoes.CreatedAt, table.Shoes.CountSales)
		_, err = table.Shoes.UPDATE(columnList).
			MODEL(toDBShoes(record)).
			WHERE(table.Shoes.VariantSku.EQ(pg.String(record.VariantSKU))).
			ExecContext(ctx, db)
	case models.CategoryClothing:
		columnList := table.Clothing.MutableColumns.Except(table.Clothing.CreatedAt, table.Clothing.CountSales)
		_, err = table.Clothing.UPDATE(columnList).
			MODEL(toDBClothing(record)).
			WHERE(table.Clothing.VariantSku.EQ(pg.String(record.VariantSKU))).
			ExecContext(ctx, db)
	case models.CategoryAccessories:
		columnList := table.Accessories.MutableColumns.Except(table.Accessories.CreatedAt, table.Accessories.CountSales)
		_, err = table.Accessories.UPDATE(columnList).
			MODEL(toDBAccessories(record)).
			WHERE(table.Accessories.VariantSku.EQ(pg.String(record.VariantSKU))).
			ExecContext(ctx, db)
	default:
		err = fmt.Errorf("unknown category %q", record.Category)
	}
	return err
}

func deleteRecords(ctx context.Context, db qrm.DB, category models.Category, keys []string) (int, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	ids := make([]pg.Expression, 0, len(keys))
	for ix := range keys {
		ids = append(ids, pg.String(keys[ix]))
	}

	var (
		result sql.Result
		err    error
	)
	switch category {
	case models.CategoryShoes:
		result, err = table.Shoes.DELETE().
			WHERE(table.Shoes.VariantSku.IN(ids...)).
			ExecContext(ctx, db)
	case models.CategoryClothing:
		result, err = table.Clothing.DELETE().
			WHERE(table.Clothing.VariantSku.IN(ids...)).
			ExecContext(ctx, db)
	case models.CategoryAccessories:
		result, err = table.Accessories.DELETE().
			WHERE(table.Accessories.VariantSku.IN(ids...)).
			ExecContext(ctx, db)
	default:
		return 0, fmt.Errorf("unknown category %q", category)
	}
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't count deleted rows: %w", err)
	}

	return int(deleted), nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
