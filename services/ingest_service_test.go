package services

import (
	"context"
	"testing"

	"vhts/errors"
	"vhts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hotelHeader() []interface{} {
	return []interface{}{"Hotel", "PML", "PCL", "TPK", "GPR", "TPTT", "RLMTA", "RLMTN"}
}

func hotelRow(hotel string, tpk string) []interface{} {
	return []interface{}{hotel, "Budi", "Sari", tpk, "120", "2.5", "300", "150"}
}

func TestIngestHotelKinerjaEndToEnd(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	wb := makeWorkbook(t,
		hotelHeader(),
		hotelRow("A", "55.5"),
		hotelRow("B", "1,234"),
		hotelRow("A", ""),
	)

	result, err := svc.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.NoError(t, err)
	assert.Equal(t, 3, result.JumlahRow)

	var rows []models.HotelKinerja
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)

	jumlahA := 0
	for _, r := range rows {
		assert.Equal(t, 2024, r.Tahun)
		assert.Equal(t, 3, r.Bulan)
		assert.False(t, r.Tanggal.IsZero())
		if r.Hotel == "A" {
			jumlahA++
		}
	}
	assert.Equal(t, 2, jumlahA)

	// Koma ribuan dibuang, sel kosong jadi null
	require.NotNil(t, rows[0].Tpk)
	assert.Equal(t, 55.5, *rows[0].Tpk)
	require.NotNil(t, rows[1].Tpk)
	assert.Equal(t, 1234.0, *rows[1].Tpk)
	assert.Nil(t, rows[2].Tpk)
}

func TestIngestHotelKinerjaKolomPeriodeMenang(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	wb := makeWorkbook(t,
		[]interface{}{"Hotel", "PML", "PCL", "TPK", "GPR", "TPTT", "RLMTA", "RLMTN", "Tahun", "Bulan"},
		[]interface{}{"A", "Budi", "Sari", "50", "1", "1", "1", "1", "2,023", "7"},
		[]interface{}{"B", "Budi", "Sari", "60", "1", "1", "1", "1", "2023", "8"},
	)

	// Parameter caller (2024, 3) harus diabaikan karena file membawa periode
	_, err := svc.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.NoError(t, err)

	var rows []models.HotelKinerja
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, 2023, rows[0].Tahun)
	assert.Equal(t, 7, rows[0].Bulan)
	assert.Equal(t, 2023, rows[1].Tahun)
	assert.Equal(t, 8, rows[1].Bulan)
}

func TestIngestHotelKinerjaKolomHilang(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	wb := makeWorkbook(t,
		[]interface{}{"Hotel", "PML", "PCL", "GPR", "TPTT", "RLMTA", "RLMTN"},
		[]interface{}{"A", "Budi", "Sari", "1", "1", "1", "1"},
	)

	_, err := svc.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingColumns))
	assert.Contains(t, err.Error(), "tpk")

	// Tidak ada baris yang sempat tertulis
	var n int64
	require.NoError(t, db.Model(&models.HotelKinerja{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestIngestHotelKinerjaAngkaRusakTidakMenulis(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	wb := makeWorkbook(t,
		hotelHeader(),
		hotelRow("A", "55.5"),
		hotelRow("B", "abc"),
	)

	_, err := svc.IngestHotelKinerja(ctx, wb, 2024, 3, PolicyReject)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidNumber))

	// Seluruh batch gagal, termasuk baris pertama yang valid
	var n int64
	require.NoError(t, db.Model(&models.HotelKinerja{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestIngestKebijakanKonflik(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	ingest := func(hotel string) error {
		_, err := svc.IngestHotelKinerja(ctx,
			makeWorkbook(t, hotelHeader(), hotelRow(hotel, "50")),
			2024, 3, PolicyReject)
		return err
	}

	require.NoError(t, ingest("A"))

	// reject: periode sudah terisi, tidak ada baris baru
	err := ingest("B")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDuplicatePeriod))

	var n int64
	require.NoError(t, db.Model(&models.HotelKinerja{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// replace: baris lama periode itu diganti
	result, err := svc.IngestHotelKinerja(ctx,
		makeWorkbook(t, hotelHeader(), hotelRow("C", "60"), hotelRow("D", "70")),
		2024, 3, PolicyReplace)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowDihapus)

	var rows []models.HotelKinerja
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "C", rows[0].Hotel)
	assert.Equal(t, "D", rows[1].Hotel)

	// append: baris lama dibiarkan
	_, err = svc.IngestHotelKinerja(ctx,
		makeWorkbook(t, hotelHeader(), hotelRow("E", "80")),
		2024, 3, PolicyAppend)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.HotelKinerja{}).Count(&n).Error)
	assert.EqualValues(t, 3, n)
}

func TestIngestAbsensiPersentase(t *testing.T) {
	svc, db := newTestIngestService(t)
	ctx := context.Background()

	wb := makeWorkbook(t,
		[]interface{}{"PML", "PCL", "Target", "Realisasi"},
		[]interface{}{"Budi", "Sari", "50", "25"},
		[]interface{}{"Budi", "Rina", "0", "10"},
		[]interface{}{"Tono", "Sari", "", "10"},
	)

	_, err := svc.IngestAbsensi(ctx, wb, 2024, 3, PolicyReject)
	require.NoError(t, err)

	var rows []models.Absensi
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)

	assert.Equal(t, 50.0, rows[0].Persentase)
	// Target nol tidak boleh jadi error pembagian
	assert.Equal(t, 0.0, rows[1].Persentase)
	// Target kosong juga menghasilkan 0
	assert.Nil(t, rows[2].Target)
	assert.Equal(t, 0.0, rows[2].Persentase)
}

func TestHitungPersentase(t *testing.T) {
	target := 50
	realisasi := 25
	nol := 0

	assert.Equal(t, 50.0, HitungPersentase(&target, &realisasi))
	assert.Equal(t, 0.0, HitungPersentase(&nol, &realisasi))
	assert.Equal(t, 0.0, HitungPersentase(nil, &realisasi))
	assert.Equal(t, 0.0, HitungPersentase(&target, nil))
}

func TestPeriodeSudahAda(t *testing.T) {
	svc, _ := newTestIngestService(t)
	ctx := context.Background()

	ada, err := svc.PeriodeSudahAda(ctx, "hotel_kinerja", 2024, 3)
	require.NoError(t, err)
	assert.False(t, ada)

	_, err = svc.IngestHotelKinerja(ctx,
		makeWorkbook(t, hotelHeader(), hotelRow("A", "50")),
		2024, 3, PolicyReject)
	require.NoError(t, err)

	ada, err = svc.PeriodeSudahAda(ctx, "hotel_kinerja", 2024, 3)
	require.NoError(t, err)
	assert.True(t, ada)

	_, err = svc.PeriodeSudahAda(ctx, "users; DROP TABLE users", 2024, 3)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTable))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyReject, p)

	p, err = ParsePolicy("replace")
	require.NoError(t, err)
	assert.Equal(t, PolicyReplace, p)

	_, err = ParsePolicy("upsert")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPolicy))
}
