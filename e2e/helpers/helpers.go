package helpers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/apparelshop/catalog-syncer/internal/platform/models"
	"github.com/apparelshop/catalog-syncer/internal/platform/models/modelstesting"
	"github.com/apparelshop/catalog-syncer/internal/platform/objstore"
	pgmodels "github.com/apparelshop/catalog-syncer/internal/platform/storage/gen/postgres/public/model"
	"github.com/apparelshop/catalog-syncer/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

// WaitForChangeLogs is blocking helper function, returns change log entries
// ordered by ID after at least count of them are stored.
func WaitForChangeLogs(t *testing.T, queryable qrm.Queryable, count int) []pgmodels.ChangeLogs {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 500)
		entries := storagetesting.GetChangeLogs(t, queryable)
		if len(entries) >= count {
			sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
			return entries
		}
	}
}

// GenerateRows generates n valid sheet rows of category with deterministic
// business keys and one expected image per row.
func GenerateRows(t *testing.T, category models.Category, n int) []models.Row {
	t.Helper()

	rows := make([]models.Row, n)
	for ix := 0; ix < n; ix++ {
		sku := fmt.Sprintf("%s%d", category, ix+1)
		position := ix + 1
		rows[ix] = modelstesting.FakeRow(category, func(r *models.Row) {
			r.Position = position
			r.Fields["sku"] = sku
			r.Fields["world_sku"] = "ru"
			r.Fields["variant_sku"] = fmt.Sprintf("%s_ru_%d", sku, position)
			r.Fields["count_images"] = "1"
		})
	}

	return rows
}

// Tombstone clears every non-key field of row, turning it into a deletion signal.
func Tombstone(row models.Row) models.Row {
	fields := make(map[string]string, len(row.Fields))
	for name := range row.Fields {
		fields[name] = ""
	}
	fields["variant_sku"] = row.Fields["variant_sku"]

	return models.Row{
		Position: row.Position,
		Fields:   fields,
	}
}

// RowsToCSV is helper function which converts rows to a csv sheet export
// and returns it as byte slice.
func RowsToCSV(t *testing.T, rows []models.Row) []byte {
	t.Helper()

	header := make([]string, 0, len(rows[0].Fields))
	for name := range rows[0].Fields {
		header = append(header, name)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	require.NoError(t, writer.Write(header), "can't write sheet header")
	for _, row := range rows {
		record := make([]string, len(header))
		for ix, name := range header {
			record[ix] = row.Fields[name]
		}
		require.NoError(t, writer.Write(record), "can't write sheet row")
	}
	writer.Flush()
	require.NoError(t, writer.Error(), "can't flush sheet")

	return buf.Bytes()
}

// BuildArchive is helper function which builds a zip archive with one fake
// image per file name.
func BuildArchive(t *testing.T, names []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range names {
		entry, err := writer.Create(name)
		require.NoError(t, err, "can't create archive entry")
		_, err = entry.Write([]byte("fake image bytes"))
		require.NoError(t, err, "can't write archive entry")
	}
	require.NoError(t, writer.Close(), "can't close archive")

	return buf.Bytes()
}

// PrepareSheetServer is helper function for mocking the sheet export server.
// Every sheet set maps url path to csv content, the returned function
// switches the served set, set number is from 0 to len(sheetSets) exclusive.
func PrepareSheetServer(t *testing.T, sheetSets []map[string][]byte) (*httptest.Server, func(int)) {
	t.Helper()

	currentSet := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		sheet, ok := sheetSets[currentSet][req.URL.Path]
		if !ok {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}
		wrt.Header().Add("Content-Type", "text/csv")
		wrt.WriteHeader(http.StatusOK)
		_, _ = wrt.Write(sheet)
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { currentSet = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// CleanupImages is helper function which deletes every stored object under prefix.
func CleanupImages(t *testing.T, store *objstore.S3, prefix string) {
	t.Helper()

	keys, err := store.List(context.Background(), prefix)
	if err != nil {
		require.FailNow(t, "can't list stored images", err)
	}
	for _, key := range keys {
		if err := store.Delete(context.Background(), key); err != nil {
			require.FailNow(t, "can't delete stored image", key, err)
		}
	}
}
