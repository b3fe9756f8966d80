package models

import (
	"time"
)

// Absensi menyimpan rekap kehadiran petugas PML dan PCL per periode.
// Persentase dihitung saat ingest: realisasi/target*100, 0 jika target kosong.
type Absensi struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Tanggal    time.Time `gorm:"type:date" json:"tanggal"`
	Tahun      int       `gorm:"index:idx_absensi_periode" json:"tahun"`
	Bulan      int       `gorm:"index:idx_absensi_periode" json:"bulan"`
	Pml        string    `json:"pml"`
	Pcl        string    `json:"pcl"`
	Target     *int      `json:"target"`
	Realisasi  *int      `json:"realisasi"`
	Persentase float64   `json:"persentase"`
}

func (Absensi) TableName() string {
	return "absensi"
}
