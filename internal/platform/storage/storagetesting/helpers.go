package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/model"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertShoes is a helper test function to insert shoes records.
func InsertShoes(t *testing.T, exc qrm.Executable, records ...pgmodels.Shoes) {
	t.Helper()

	if len(records) == 0 {
		return
	}

	_, err := table.Shoes.INSERT(table.Shoes.MutableColumns).MODELS(records).Exec(exc)
	if err != nil {
		t.Fatal("can't insert shoes", err)
	}
}

// InsertClothing is a helper test function to insert clothing records.
func InsertClothing(t *testing.T, exc qrm.Executable, records ...pgmodels.Clothing) {
	t.Helper()

	if len(records) == 0 {
		return
	}

	_, err := table.Clothing.INSERT(table.Clothing.MutableColumns).MODELS(records).Exec(exc)
	if err != nil {
		t.Fatal("can't insert clothing", err)
	}
}

// InsertAccessories is a helper test function to insert accessories records.
func InsertAccessories(t *testing.T, exc qrm.Executable, records ...pgmodels.Accessories) {
	t.Helper()

	if len(records) == 0 {
		return
	}

	_, err := table.Accessories.INSERT(table.Accessories.MutableColumns).MODELS(records).Exec(exc)
	if err != nil {
		t.Fatal("can't insert accessories", err)
	}
}

// GetShoes is a helper test function to get all shoes records.
func GetShoes(t *testing.T, queryable qrm.Queryable) []pgmodels.Shoes {
	t.Helper()

	records := []pgmodels.Shoes{}
	err := table.Shoes.SELECT(table.Shoes.AllColumns).
		WHERE(table.Shoes.ID.IS_NOT_NULL()).
		Query(queryable, &records)
	if err != nil {
		t.Fatal("can't get shoes", err)
	}

	return records
}

// GetClothing is a helper test function to get all clothing records.
func GetClothing(t *testing.T, queryable qrm.Queryable) []pgmodels.Clothing {
	t.Helper()

	records := []pgmodels.Clothing{}
	err := table.Clothing.SELECT(table.Clothing.AllColumns).
		WHERE(table.Clothing.ID.IS_NOT_NULL()).
		Query(queryable, &records)
	if err != nil {
		t.Fatal("can't get clothing", err)
	}

	return records
}

// GetAccessories is a helper test function to get all accessories records.
func GetAccessories(t *testing.T, queryable qrm.Queryable) []pgmodels.Accessories {
	t.Helper()

	records := []pgmodels.Accessories{}
	err := table.Accessories.SELECT(table.Accessories.AllColumns).
		WHERE(table.Accessories.ID.IS_NOT_NULL()).
		Query(queryable, &records)
	if err != nil {
		t.Fatal("can't get accessories", err)
	}

	return records
}

// GetChangeLogs is a helper test function to get all change log entries.
func GetChangeLogs(t *testing.T, queryable qrm.Queryable) []pgmodels.ChangeLogs {
	t.Helper()

	entries := []pgmodels.ChangeLogs{}
	err := table.ChangeLogs.SELECT(table.ChangeLogs.AllColumns).
		WHERE(table.ChangeLogs.ID.IS_NOT_NULL()).
		Query(queryable, &entries)
	if err != nil {
		t.Fatal("can't get change logs", err)
	}

	return entries
}

// CleanupData is a helper test function to delete all catalog data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Shoes.DELETE().WHERE(table.Shoes.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete shoes data", err)
	}

	_, err = table.Clothing.DELETE().WHERE(table.Clothing.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete clothing data", err)
	}

	_, err = table.Accessories.DELETE().WHERE(table.Accessories.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete accessories data", err)
	}

	_, err = table.ChangeLogs.DELETE().WHERE(table.ChangeLogs.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete change logs data", err)
	}
}
