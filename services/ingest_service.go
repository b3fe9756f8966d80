package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"vhts/constants"
	"vhts/dto"
	"vhts/errors"
	"vhts/models"
	"vhts/services/logger"
	"vhts/utils"

	"gorm.io/gorm"
)

// ConflictPolicy menentukan perlakuan ingest terhadap periode yang sudah
// terisi: tolak, ganti seluruh baris periode, atau tambahkan begitu saja.
type ConflictPolicy string

const (
	PolicyReject  ConflictPolicy = "reject"
	PolicyReplace ConflictPolicy = "replace"
	PolicyAppend  ConflictPolicy = "append"
)

// ParsePolicy menerjemahkan string form menjadi ConflictPolicy.
// String kosong berarti reject.
func ParsePolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicyReplace:
		return PolicyReplace, nil
	case PolicyAppend:
		return PolicyAppend, nil
	}
	return "", errors.NewAppError(errors.ErrCodeInvalidPolicy,
		fmt.Sprintf("Kebijakan konflik %q tidak dikenal (reject|replace|append)", s), nil)
}

// HotelColumnMap memetakan kolom kanonik kinerja hotel ke alias header
// yang pernah muncul di file kiriman lapangan
var HotelColumnMap = map[string][]string{
	"hotel": {"hotel", "nama_hotel", "hotel_name"},
	"pml":   {"pml"},
	"pcl":   {"pcl"},
	"tpk":   {"tpk", "tpk_persen", "tpk_"},
	"gpr":   {"gpr"},
	"tptt":  {"tptt"},
	"rlmta": {"rlmta"},
	"rlmtn": {"rlmtn"},
}

// AbsensiColumnMap memetakan kolom kanonik absensi ke alias header
var AbsensiColumnMap = map[string][]string{
	"pml":       {"pml"},
	"pcl":       {"pcl"},
	"target":    {"target"},
	"realisasi": {"realisasi"},
}

// IngestService menjalankan pipeline ingest spreadsheet ke database.
// Setiap pemanggilan berjalan dalam satu transaksi: semua baris masuk
// atau tidak ada sama sekali.
type IngestService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *TableCache
}

type IngestServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *TableCache
}

func NewIngestService(opts IngestServiceOptions) *IngestService {
	return &IngestService{
		db:     opts.DB,
		logger: opts.Logger,
		cache:  opts.Cache,
	}
}

type periode struct {
	Tahun int
	Bulan int
}

func validatePeriode(tahun, bulan int) error {
	if tahun < 1900 || tahun > 2200 {
		return errors.NewAppError(errors.ErrCodeInvalidPeriod,
			fmt.Sprintf("Tahun %d di luar rentang yang masuk akal", tahun), nil)
	}
	if bulan < 1 || bulan > 12 {
		return errors.NewAppError(errors.ErrCodeInvalidPeriod,
			fmt.Sprintf("Bulan %d harus di antara 1 dan 12", bulan), nil)
	}
	return nil
}

// rowPeriods menentukan periode efektif per baris. Kolom tahun/bulan di
// file selalu menang atas parameter caller; kalau kolomnya tidak ada,
// semua baris memakai periode dari caller.
func rowPeriods(t *utils.Table, tahun, bulan int) ([]periode, error) {
	hasTahun := t.HasColumn("tahun")
	hasBulan := t.HasColumn("bulan")

	periods := make([]periode, len(t.Rows))
	for i := range t.Rows {
		p := periode{Tahun: tahun, Bulan: bulan}
		if hasTahun {
			v, err := utils.CleanInt(t.Value(i, "tahun"))
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, errors.NewAppError(errors.ErrCodeInvalidNumber,
					fmt.Sprintf("Kolom tahun kosong pada baris data ke-%d", i+1), nil)
			}
			p.Tahun = *v
		}
		if hasBulan {
			v, err := utils.CleanInt(t.Value(i, "bulan"))
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, errors.NewAppError(errors.ErrCodeInvalidNumber,
					fmt.Sprintf("Kolom bulan kosong pada baris data ke-%d", i+1), nil)
			}
			p.Bulan = *v
		}
		periods[i] = p
	}
	return periods, nil
}

func distinctPeriods(periods []periode) []periode {
	seen := make(map[periode]bool)
	var out []periode
	for _, p := range periods {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func periodeTerisi(tx *gorm.DB, model interface{}, p periode) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("tahun = ? AND bulan = ?", p.Tahun, p.Bulan).Count(&n).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Gagal memeriksa duplikasi periode", err)
	}
	return n > 0, nil
}

// applyPolicy menjalankan guard duplikasi periode di dalam transaksi.
// Mengembalikan jumlah baris lama yang dihapus (kebijakan replace).
func applyPolicy(tx *gorm.DB, model interface{}, periods []periode, policy ConflictPolicy) (int, error) {
	deleted := 0
	for _, p := range periods {
		ada, err := periodeTerisi(tx, model, p)
		if err != nil {
			return deleted, err
		}
		if !ada {
			continue
		}
		switch policy {
		case PolicyReject:
			return deleted, errors.NewAppError(errors.ErrCodeDuplicatePeriod,
				fmt.Sprintf("Data periode %d-%s sudah ada. Pakai kebijakan replace atau append jika memang disengaja",
					p.Tahun, constants.NamaBulan(p.Bulan)),
				errors.ErrDuplicatePeriod)
		case PolicyReplace:
			res := tx.Where("tahun = ? AND bulan = ?", p.Tahun, p.Bulan).Delete(model)
			if res.Error != nil {
				return deleted, errors.NewAppError(errors.ErrCodeDBError, "Gagal menghapus baris periode lama", res.Error)
			}
			deleted += int(res.RowsAffected)
		case PolicyAppend:
			// biarkan baris lama, tambahkan yang baru
		}
	}
	return deleted, nil
}

// PeriodeSudahAda memeriksa apakah sebuah periode sudah punya baris di tabel.
// Dipertahankan sebagai API penasihat; pipeline ingest sendiri selalu
// menjalankan pemeriksaan ini di dalam transaksinya.
func (s *IngestService) PeriodeSudahAda(ctx context.Context, tabel string, tahun, bulan int) (bool, error) {
	if !constants.IsReadableTable(tabel) {
		return false, errors.NewAppError(errors.ErrCodeInvalidTable,
			fmt.Sprintf("Tabel %q tidak dikenal", tabel), nil)
	}
	var n int64
	err := s.db.WithContext(ctx).Table(tabel).
		Where("tahun = ? AND bulan = ?", tahun, bulan).Count(&n).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Gagal memeriksa duplikasi periode", err)
	}
	return n > 0, nil
}

// IngestHotelKinerja membaca workbook kinerja hotel dan menyimpan seluruh
// barisnya untuk periode (tahun, bulan) yang diberikan caller.
func (s *IngestService) IngestHotelKinerja(ctx context.Context, file io.Reader, tahun, bulan int, policy ConflictPolicy) (*dto.IngestResult, error) {
	if err := validatePeriode(tahun, bulan); err != nil {
		return nil, err
	}

	tbl, err := utils.ReadSheet(file)
	if err != nil {
		return nil, err
	}
	if len(tbl.Rows) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeEmptySheet, "Sheet tidak punya baris data", errors.ErrEmptySheet)
	}

	periods, err := rowPeriods(tbl, tahun, bulan)
	if err != nil {
		return nil, err
	}

	col, err := utils.ResolveColumns(tbl, HotelColumnMap)
	if err != nil {
		return nil, err
	}

	tanggal := time.Now()
	records := make([]models.HotelKinerja, 0, len(tbl.Rows))
	for i := range tbl.Rows {
		rec := models.HotelKinerja{
			Tanggal: tanggal,
			Tahun:   periods[i].Tahun,
			Bulan:   periods[i].Bulan,
			Hotel:   tbl.Value(i, col["hotel"]),
			Pml:     tbl.Value(i, col["pml"]),
			Pcl:     tbl.Value(i, col["pcl"]),
		}
		if rec.Tpk, err = utils.CleanNumber(tbl.Value(i, col["tpk"])); err != nil {
			return nil, err
		}
		if rec.Gpr, err = utils.CleanNumber(tbl.Value(i, col["gpr"])); err != nil {
			return nil, err
		}
		if rec.Tptt, err = utils.CleanNumber(tbl.Value(i, col["tptt"])); err != nil {
			return nil, err
		}
		if rec.Rlmta, err = utils.CleanNumber(tbl.Value(i, col["rlmta"])); err != nil {
			return nil, err
		}
		if rec.Rlmtn, err = utils.CleanNumber(tbl.Value(i, col["rlmtn"])); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	deleted := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		deleted, txErr = applyPolicy(tx, &models.HotelKinerja{}, distinctPeriods(periods), policy)
		if txErr != nil {
			return txErr
		}
		if txErr = tx.Create(&records).Error; txErr != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menyimpan baris kinerja hotel", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := s.cache.Invalidate(ctx, constants.TableHotelKinerja); cerr != nil {
		s.logger.Error("gagal invalidasi cache %s: %v", constants.TableHotelKinerja, cerr)
	}
	s.logger.Info("ingest hotel_kinerja: %d baris, kebijakan %s", len(records), policy)

	return &dto.IngestResult{
		Tabel:      constants.TableHotelKinerja,
		JumlahRow:  len(records),
		Kebijakan:  string(policy),
		RowDihapus: deleted,
	}, nil
}

// IngestAbsensi membaca workbook absensi PML/PCL dan menyimpan barisnya
// beserta persentase capaian yang dihitung dari target dan realisasi.
func (s *IngestService) IngestAbsensi(ctx context.Context, file io.Reader, tahun, bulan int, policy ConflictPolicy) (*dto.IngestResult, error) {
	if err := validatePeriode(tahun, bulan); err != nil {
		return nil, err
	}

	tbl, err := utils.ReadSheet(file)
	if err != nil {
		return nil, err
	}
	if len(tbl.Rows) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeEmptySheet, "Sheet tidak punya baris data", errors.ErrEmptySheet)
	}

	periods, err := rowPeriods(tbl, tahun, bulan)
	if err != nil {
		return nil, err
	}

	col, err := utils.ResolveColumns(tbl, AbsensiColumnMap)
	if err != nil {
		return nil, err
	}

	tanggal := time.Now()
	records := make([]models.Absensi, 0, len(tbl.Rows))
	for i := range tbl.Rows {
		target, err := utils.CleanInt(tbl.Value(i, col["target"]))
		if err != nil {
			return nil, err
		}
		realisasi, err := utils.CleanInt(tbl.Value(i, col["realisasi"]))
		if err != nil {
			return nil, err
		}

		records = append(records, models.Absensi{
			Tanggal:    tanggal,
			Tahun:      periods[i].Tahun,
			Bulan:      periods[i].Bulan,
			Pml:        tbl.Value(i, col["pml"]),
			Pcl:        tbl.Value(i, col["pcl"]),
			Target:     target,
			Realisasi:  realisasi,
			Persentase: HitungPersentase(target, realisasi),
		})
	}

	deleted := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		deleted, txErr = applyPolicy(tx, &models.Absensi{}, distinctPeriods(periods), policy)
		if txErr != nil {
			return txErr
		}
		if txErr = tx.Create(&records).Error; txErr != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Gagal menyimpan baris absensi", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := s.cache.Invalidate(ctx, constants.TableAbsensi); cerr != nil {
		s.logger.Error("gagal invalidasi cache %s: %v", constants.TableAbsensi, cerr)
	}
	s.logger.Info("ingest absensi: %d baris, kebijakan %s", len(records), policy)

	return &dto.IngestResult{
		Tabel:      constants.TableAbsensi,
		JumlahRow:  len(records),
		Kebijakan:  string(policy),
		RowDihapus: deleted,
	}, nil
}

// HitungPersentase menghitung persentase capaian realisasi terhadap target.
// Target kosong atau nol menghasilkan 0, bukan error dan bukan null.
func HitungPersentase(target, realisasi *int) float64 {
	if target == nil || *target == 0 {
		return 0
	}
	real := 0
	if realisasi != nil {
		real = *realisasi
	}
	return float64(real) / float64(*target) * 100
}
