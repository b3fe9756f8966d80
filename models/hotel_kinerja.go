package models

import (
	"time"
)

// HotelKinerja menyimpan indikator kinerja hotel per periode (tahun, bulan).
// Indikator bersifat nullable karena tidak semua hotel mengisi semua kolom.
type HotelKinerja struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Tanggal time.Time `gorm:"type:date" json:"tanggal"`
	Tahun   int       `gorm:"index:idx_hotel_kinerja_periode" json:"tahun"`
	Bulan   int       `gorm:"index:idx_hotel_kinerja_periode" json:"bulan"`
	Hotel   string    `json:"hotel"`
	Pml     string    `json:"pml"`
	Pcl     string    `json:"pcl"`
	Tpk     *float64  `json:"tpk"`
	Gpr     *float64  `json:"gpr"`
	Tptt    *float64  `json:"tptt"`
	Rlmta   *float64  `json:"rlmta"`
	Rlmtn   *float64  `json:"rlmtn"`
}

func (HotelKinerja) TableName() string {
	return "hotel_kinerja"
}
