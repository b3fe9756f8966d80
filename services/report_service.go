package services

import (
	"context"
	"fmt"

	"vhts/constants"
	"vhts/dto"
	"vhts/errors"
	"vhts/models"
	"vhts/services/logger"

	"gorm.io/gorm"
)

// ReportService menyediakan pembacaan tabel dan agregasi untuk dashboard
type ReportService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *TableCache
}

type ReportServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *TableCache
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	return &ReportService{
		db:     opts.DB,
		logger: opts.Logger,
		cache:  opts.Cache,
	}
}

// ReadTable memuat seluruh isi tabel untuk difilter di sisi presentasi.
// Hasilnya dicache di Redis dan diinvalidasi setiap ingest.
func (s *ReportService) ReadTable(ctx context.Context, tabel string) ([]map[string]interface{}, error) {
	if !constants.IsReadableTable(tabel) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTable,
			fmt.Sprintf("Tabel %q tidak dikenal", tabel), nil)
	}

	if rows, err := s.cache.Get(ctx, tabel); err != nil {
		s.logger.Error("gagal membaca cache %s: %v", tabel, err)
	} else if rows != nil {
		return rows, nil
	}

	var rows []map[string]interface{}
	if err := s.db.WithContext(ctx).Table(tabel).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membaca tabel", err)
	}

	if err := s.cache.Set(ctx, tabel, rows); err != nil {
		s.logger.Error("gagal menulis cache %s: %v", tabel, err)
	}
	return rows, nil
}

func normalizeBulanRange(awal, akhir int) (int, int) {
	if awal < 1 || awal > 12 {
		awal = 1
	}
	if akhir < 1 || akhir > 12 {
		akhir = 12
	}
	return awal, akhir
}

// HotelIndikator menghasilkan grafik rata-rata per bulan dan tabel detail
// untuk satu indikator kinerja hotel. Filter didorong ke query database,
// semantik agregasinya sama dengan groupby-mean lama di sisi presentasi.
func (s *ReportService) HotelIndikator(ctx context.Context, filter dto.HotelFilter) (*dto.HotelIndikatorResult, error) {
	if !constants.IsIndikatorHotel(filter.Indikator) {
		return nil, errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Indikator %q tidak dikenal", filter.Indikator), nil)
	}
	awal, akhir := normalizeBulanRange(filter.BulanAwal, filter.BulanAkhir)

	base := s.db.WithContext(ctx).Model(&models.HotelKinerja{}).
		Where("tahun = ? AND bulan BETWEEN ? AND ?", filter.Tahun, awal, akhir)
	if len(filter.Hotel) > 0 {
		base = base.Where("hotel IN ?", filter.Hotel)
	}
	// Session baru supaya base aman dipakai untuk dua query
	base = base.Session(&gorm.Session{})

	// AVG mengabaikan NULL, sama dengan mean pandas yang melewati NaN
	var grafik []struct {
		Bulan    int
		RataRata float64
	}
	err := base.
		Select(fmt.Sprintf("bulan, AVG(%s) AS rata_rata", filter.Indikator)).
		Where(filter.Indikator + " IS NOT NULL").
		Group("bulan").
		Order("bulan").
		Scan(&grafik).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal mengagregasi indikator", err)
	}

	var detail []struct {
		Hotel string
		Bulan int
		Nilai *float64
	}
	err = base.
		Select(fmt.Sprintf("hotel, bulan, %s AS nilai", filter.Indikator)).
		Order("hotel, bulan").
		Scan(&detail).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membaca detail indikator", err)
	}

	result := &dto.HotelIndikatorResult{Indikator: filter.Indikator}
	for _, g := range grafik {
		result.Grafik = append(result.Grafik, dto.IndikatorBulanan{
			Bulan:     g.Bulan,
			NamaBulan: constants.NamaBulan(g.Bulan),
			RataRata:  g.RataRata,
		})
	}
	for _, d := range detail {
		result.Tabel = append(result.Tabel, dto.HotelIndikatorRow{
			Hotel:     d.Hotel,
			Bulan:     d.Bulan,
			NamaBulan: constants.NamaBulan(d.Bulan),
			Nilai:     d.Nilai,
		})
	}
	return result, nil
}

// DaftarHotel mengembalikan nama hotel unik dalam satu tahun untuk widget filter
func (s *ReportService) DaftarHotel(ctx context.Context, tahun int) ([]string, error) {
	var hotels []string
	err := s.db.WithContext(ctx).Model(&models.HotelKinerja{}).
		Where("tahun = ? AND hotel <> ''", tahun).
		Distinct("hotel").
		Order("hotel").
		Pluck("hotel", &hotels).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membaca daftar hotel", err)
	}
	return hotels, nil
}

// RekapAbsensi meratakan baris absensi menjadi satu baris per petugas
// (PML dan PCL terpisah), dengan filter role dan nama opsional.
func (s *ReportService) RekapAbsensi(ctx context.Context, filter dto.AbsensiFilter) ([]dto.AbsensiView, error) {
	awal, akhir := normalizeBulanRange(filter.BulanAwal, filter.BulanAkhir)

	var rows []models.Absensi
	err := s.db.WithContext(ctx).
		Where("tahun = ? AND bulan BETWEEN ? AND ?", filter.Tahun, awal, akhir).
		Order("bulan, id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal membaca absensi", err)
	}

	namaDipilih := make(map[string]bool, len(filter.Nama))
	for _, n := range filter.Nama {
		namaDipilih[n] = true
	}
	cocok := func(nama string) bool {
		return len(namaDipilih) == 0 || namaDipilih[nama]
	}

	views := make([]dto.AbsensiView, 0, len(rows)*2)
	for _, r := range rows {
		if (filter.Role == "" || filter.Role == "PML") && cocok(r.Pml) {
			views = append(views, dto.AbsensiView{
				Bulan:      r.Bulan,
				NamaBulan:  constants.NamaBulan(r.Bulan),
				Nama:       r.Pml,
				Role:       "PML",
				Target:     r.Target,
				Realisasi:  r.Realisasi,
				Persentase: r.Persentase,
			})
		}
		if (filter.Role == "" || filter.Role == "PCL") && cocok(r.Pcl) {
			views = append(views, dto.AbsensiView{
				Bulan:      r.Bulan,
				NamaBulan:  constants.NamaBulan(r.Bulan),
				Nama:       r.Pcl,
				Role:       "PCL",
				Target:     r.Target,
				Realisasi:  r.Realisasi,
				Persentase: r.Persentase,
			})
		}
	}
	return views, nil
}
