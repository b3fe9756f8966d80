package services

import (
	"context"
	"testing"

	"vhts/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCache menjalankan Redis in-process supaya jalur cache ikut teruji
func newTestCache(t *testing.T) (*TableCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTableCache(client), mr
}

func TestTableCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	rows, err := cache.Get(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	assert.Nil(t, rows)

	isi := []map[string]interface{}{{"hotel": "A", "tpk": 55.5}}
	require.NoError(t, cache.Set(ctx, constants.TableHotelKinerja, isi))
	assert.True(t, mr.Exists("tabel:hotel_kinerja"))

	rows, err = cache.Get(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["hotel"])
	assert.Equal(t, 55.5, rows[0]["tpk"])

	require.NoError(t, cache.Invalidate(ctx, constants.TableHotelKinerja))
	assert.False(t, mr.Exists("tabel:hotel_kinerja"))

	rows, err = cache.Get(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestTableCacheNilAman(t *testing.T) {
	var cache *TableCache
	ctx := context.Background()

	rows, err := cache.Get(ctx, constants.TableAbsensi)
	require.NoError(t, err)
	assert.Nil(t, rows)
	require.NoError(t, cache.Set(ctx, constants.TableAbsensi, nil))
	require.NoError(t, cache.Invalidate(ctx, constants.TableAbsensi))

	tanpaRedis := NewTableCache(nil)
	rows, err = tanpaRedis.Get(ctx, constants.TableAbsensi)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadTableMemakaiCache(t *testing.T) {
	db := newTestDB(t)
	cache, mr := newTestCache(t)
	ingest := NewIngestService(IngestServiceOptions{DB: db, Logger: testLogger(), Cache: cache})
	report := NewReportService(ReportServiceOptions{DB: db, Logger: testLogger(), Cache: cache})
	ctx := context.Background()

	wb := makeWorkbook(t,
		hotelHeader(),
		hotelRow("A", "55.5"),
		hotelRow("B", "60"),
	)
	_, err := ingest.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.NoError(t, err)

	rows, err := report.ReadTable(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, mr.Exists("tabel:hotel_kinerja"))

	// Baris yang masuk lewat jalur lain belum terlihat selama cache hidup
	require.NoError(t, db.Exec(
		"INSERT INTO hotel_kinerja (tahun, bulan, hotel, pml, pcl) VALUES (2024, 4, 'C', 'Budi', 'Sari')",
	).Error)

	rows, err = report.ReadTable(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestIngestMengosongkanCache(t *testing.T) {
	db := newTestDB(t)
	cache, mr := newTestCache(t)
	ingest := NewIngestService(IngestServiceOptions{DB: db, Logger: testLogger(), Cache: cache})
	report := NewReportService(ReportServiceOptions{DB: db, Logger: testLogger(), Cache: cache})
	ctx := context.Background()

	wb := makeWorkbook(t, hotelHeader(), hotelRow("A", "55.5"))
	_, err := ingest.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.NoError(t, err)

	rows, err := report.ReadTable(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, mr.Exists("tabel:hotel_kinerja"))

	// Ingest periode baru harus langsung mengosongkan cache tabelnya
	wb = makeWorkbook(t, hotelHeader(), hotelRow("B", "60"))
	_, err = ingest.IngestHotelKinerja(ctx, wb, 2024, 4, PolicyReject)
	require.NoError(t, err)
	assert.False(t, mr.Exists("tabel:hotel_kinerja"))

	rows, err = report.ReadTable(ctx, constants.TableHotelKinerja)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Ingest yang gagal tidak menyentuh cache
	require.True(t, mr.Exists("tabel:hotel_kinerja"))
	wb = makeWorkbook(t, hotelHeader(), hotelRow("C", "70"))
	_, err = ingest.IngestHotelKinerja(ctx, wb, 2024, 4, PolicyReject)
	require.Error(t, err)
	assert.True(t, mr.Exists("tabel:hotel_kinerja"))
}
