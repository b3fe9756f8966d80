package services

import (
	"context"
	"fmt"
	"strings"

	"vhts/constants"
	"vhts/dto"
	"vhts/errors"
	"vhts/services/logger"

	"github.com/xuri/excelize/v2"
)

// ExportService membangun workbook Excel untuk diunduh dari dashboard
type ExportService struct {
	report *ReportService
	logger logger.Logger
}

type ExportServiceOptions struct {
	Report *ReportService
	Logger logger.Logger
}

func NewExportService(opts ExportServiceOptions) *ExportService {
	return &ExportService{
		report: opts.Report,
		logger: opts.Logger,
	}
}

// ExportHotelKinerja menghasilkan workbook berisi satu sheet per indikator
// (TPK, GPR, TPTT, RLMTA, RLMTN) sesuai filter yang sama dengan tampilan
func (s *ExportService) ExportHotelKinerja(ctx context.Context, tahun, bulanAwal, bulanAkhir int, hotel []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for idx, indikator := range constants.IndikatorHotel {
		sheet := strings.ToUpper(indikator)
		if idx == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menyiapkan sheet", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menambah sheet", err)
			}
		}

		result, err := s.report.HotelIndikator(ctx, dto.HotelFilter{
			Indikator:  indikator,
			Tahun:      tahun,
			BulanAwal:  bulanAwal,
			BulanAkhir: bulanAkhir,
			Hotel:      hotel,
		})
		if err != nil {
			return nil, err
		}

		f.SetCellValue(sheet, "A1", "Hotel")
		f.SetCellValue(sheet, "B1", "Bulan")
		f.SetCellValue(sheet, "C1", sheet)
		for i, row := range result.Tabel {
			baris := i + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", baris), row.Hotel)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", baris), row.NamaBulan)
			if row.Nilai != nil {
				f.SetCellValue(sheet, fmt.Sprintf("C%d", baris), *row.Nilai)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menulis workbook", err)
	}
	s.logger.Info("export hotel_kinerja tahun %d", tahun)
	return buf.Bytes(), nil
}

// ExportAbsensi menghasilkan workbook satu sheet berisi rekap absensi
func (s *ExportService) ExportAbsensi(ctx context.Context, filter dto.AbsensiFilter) ([]byte, error) {
	views, err := s.report.RekapAbsensi(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Absensi"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menyiapkan sheet", err)
	}

	headers := []string{"Bulan", "Nama", "Role", "Target", "Realisasi", "Persentase"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, v := range views {
		baris := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", baris), v.NamaBulan)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", baris), v.Nama)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", baris), v.Role)
		if v.Target != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", baris), *v.Target)
		}
		if v.Realisasi != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", baris), *v.Realisasi)
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", baris), v.Persentase)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Gagal menulis workbook", err)
	}
	s.logger.Info("export absensi tahun %d", filter.Tahun)
	return buf.Bytes(), nil
}
