package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/models/modelstesting"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage"
	pgmodels "github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/model"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage/storagetesting"
	"github.com/apparelshop/catalog-syncer/internal/reconciler"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationApplyPlanCreates() {
	storagetesting.CleanupData(s.T(), s.DB)
	record := modelstesting.FakeCatalogRecord(models.CategoryShoes)

	pg := storage.NewPostgres(s.DB)
	report, err := pg.ApplyPlan(context.TODO(), models.CategoryShoes, reconciler.Plan{
		Creates: []models.CatalogRecord{record},
	})

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.SyncReport{Added: 1}, report, "should count created record")

	stored := storagetesting.GetShoes(s.T(), s.DB)
	s.Require().Len(stored, 1, "should store one record")
	s.Equal(record.VariantSKU, stored[0].VariantSku, "should store business key")
	s.Equal(record.ColorSKU, lo.FromPtr(stored[0].ColorSku), "should store derived color_sku")
	s.Equal(record.Values["price"].Int, stored[0].Price, "should store price")
	s.Equal(record.CountSales, stored[0].CountSales, "should store sales counter")
}

func (s *PostgresTestSuite) TestIntegrationApplyPlanUpdates() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShoes(s.T(), s.DB, fakeDBShoes("alpha_ru_38", "alpha_ru"))

	record := modelstesting.FakeCatalogRecord(models.CategoryShoes, func(r *models.CatalogRecord) {
		r.VariantSKU = "alpha_ru_38"
		r.ColorSKU = "alpha_ru"
		r.Values["price"] = models.IntValue(2490)
	})

	pg := storage.NewPostgres(s.DB)
	report, err := pg.ApplyPlan(context.TODO(), models.CategoryShoes, reconciler.Plan{
		Updates: []models.CatalogRecord{record},
	})

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.SyncReport{Updated: 1}, report, "should count updated record")

	stored := storagetesting.GetShoes(s.T(), s.DB)
	s.Require().Len(stored, 1, "shouldn't create new records")
	s.Equal(int32(2490), stored[0].Price, "should store new price")
	s.Equal(int32(7), stored[0].CountSales, "server-managed counter should survive the update")
}

func (s *PostgresTestSuite) TestIntegrationApplyPlanDeletes() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShoes(s.T(), s.DB,
		fakeDBShoes("alpha_ru_38", "alpha_ru"),
		fakeDBShoes("alpha_ru_39", "alpha_ru"),
	)

	pg := storage.NewPostgres(s.DB)
	report, err := pg.ApplyPlan(context.TODO(), models.CategoryShoes, reconciler.Plan{
		Deletes: []string{"alpha_ru_38", "missing_ru_40"},
	})

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(models.SyncReport{Deleted: 1}, report, "should count only rows actually deleted")

	stored := storagetesting.GetShoes(s.T(), s.DB)
	s.Require().Len(stored, 1, "should keep the other record")
	s.Equal("alpha_ru_39", stored[0].VariantSku, "should delete only listed keys")
}

func (s *PostgresTestSuite) TestIntegrationApplyPlanConstraintWarning() {
	storagetesting.CleanupData(s.T(), s.DB)

	good := modelstesting.FakeCatalogRecord(models.CategoryShoes, func(r *models.CatalogRecord) {
		r.VariantSKU = "alpha_ru_38"
	})
	duplicate := modelstesting.FakeCatalogRecord(models.CategoryShoes, func(r *models.CatalogRecord) {
		r.VariantSKU = "alpha_ru_38"
	})

	pg := storage.NewPostgres(s.DB)
	report, err := pg.ApplyPlan(context.TODO(), models.CategoryShoes, reconciler.Plan{
		Creates: []models.CatalogRecord{good, duplicate},
	})

	s.Require().NoError(err, "constraint miss shouldn't fail the whole plan")
	s.Equal(1, report.Added, "should apply the first record")
	s.Equal(1, report.Warnings, "duplicate key should become a warning")
	s.Equal([]string{"alpha_ru_38"}, report.WarningKeys, "should report the rejected key")

	stored := storagetesting.GetShoes(s.T(), s.DB)
	s.Len(stored, 1, "rejected row shouldn't be stored")
}

func (s *PostgresTestSuite) TestIntegrationFetchByKeys() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShoes(s.T(), s.DB,
		fakeDBShoes("alpha_ru_38", "alpha_ru"),
		fakeDBShoes("bravo_ru_40", "bravo_ru"),
	)

	pg := storage.NewPostgres(s.DB)
	records, err := pg.FetchByKeys(context.TODO(), models.CategoryShoes, []string{"alpha_ru_38", "missing_ru_40"})

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(records, 1, "missing keys should be absent from the result")

	record := records["alpha_ru_38"]
	s.Require().NotNil(record, "should return stored record")
	s.Equal("alpha_ru", record.ColorSKU, "should map color_sku")
	s.Equal(int32(1990), record.Values["price"].Int, "should map price")
	s.True(record.Values["size_label"].Dec.Equal(decimal.NewFromFloat(38.5)), "should map decimal size")
	s.False(record.Values["description"].Valid, "missing description should map to null value")
}

func (s *PostgresTestSuite) TestIntegrationFetchByKeysEmpty() {
	pg := storage.NewPostgres(s.DB)

	records, err := pg.FetchByKeys(context.TODO(), models.CategoryShoes, nil)

	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(records, "shouldn't return any records")
}

func (s *PostgresTestSuite) TestIntegrationExpectedImages() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertShoes(s.T(), s.DB,
		fakeDBShoes("alpha_ru_38", "alpha_ru"),
		fakeDBShoes("alpha_ru_39", "alpha_ru"),
		fakeDBShoes("bravo_ru_40", "bravo_ru"),
	)

	pg := storage.NewPostgres(s.DB)
	expected, err := pg.ExpectedImages(context.TODO(), models.CategoryShoes)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(map[string]int{"alpha_ru": 3, "bravo_ru": 3}, expected, "should group counts by color_sku")
}

func (s *PostgresTestSuite) TestIntegrationAppendChangeLog() {
	storagetesting.CleanupData(s.T(), s.DB)
	entry := models.ChangeEntry{
		AuthorID:    7,
		AuthorName:  "importer",
		ActionType:  "full_sync",
		Description: "synchronization finished",
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}

	pg := storage.NewPostgres(s.DB)
	err := pg.AppendChangeLog(context.TODO(), entry)

	s.Require().NoError(err, "shouldn't return any error")

	stored := storagetesting.GetChangeLogs(s.T(), s.DB)
	s.Require().Len(stored, 1, "should store one entry")
	s.Equal(entry.AuthorID, stored[0].AuthorID, "should store author id")
	s.Equal(entry.AuthorName, stored[0].AuthorName, "should store author name")
	s.Equal(entry.ActionType, stored[0].ActionType, "should store action type")
	s.Equal(entry.Description, stored[0].Description, "should store description")
	s.WithinDuration(entry.Timestamp, stored[0].Timestamp, time.Second, "should store timestamp")
}

func fakeDBShoes(variantSku, colorSku string) pgmodels.Shoes {
	now := time.Now().UTC().Truncate(time.Second)
	return pgmodels.Shoes{
		VariantSku:   variantSku,
		ColorSku:     lo.ToPtr(colorSku),
		WorldSku:     "ru",
		Sku:          "alpha",
		Name:         "Shoe",
		Gender:       "F",
		Category:     "Обувь",
		Subcategory:  "Sneakers",
		Brand:        "Acme",
		Material:     "Leather",
		Color:        "Белый",
		SizeCategory: 2,
		Price:        1990,
		CountInStock: 10,
		CountImages:  3,
		CountSales:   7,
		SizeLabel:    38.5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
