package constants

import (
	"strconv"
	"strings"
)

// Role pengguna dashboard
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Nama tabel di database
const (
	TableHotelKinerja = "hotel_kinerja"
	TableAbsensi      = "absensi"
	TableUsers        = "users"
)

// Indikator kinerja hotel yang bisa diagregasi/diekspor
var IndikatorHotel = []string{"tpk", "gpr", "tptt", "rlmta", "rlmtn"}

// MIME type file .xlsx
const MimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BulanMap memetakan nama bulan Indonesia ke indeks bulan
var BulanMap = map[string]int{
	"Januari": 1, "Februari": 2, "Maret": 3, "April": 4,
	"Mei": 5, "Juni": 6, "Juli": 7, "Agustus": 8,
	"September": 9, "Oktober": 10, "November": 11, "Desember": 12,
}

// BulanReverse memetakan indeks bulan ke nama bulan Indonesia
var BulanReverse = map[int]string{
	1: "Januari", 2: "Februari", 3: "Maret", 4: "April",
	5: "Mei", 6: "Juni", 7: "Juli", 8: "Agustus",
	9: "September", 10: "Oktober", 11: "November", 12: "Desember",
}

// NamaBulan mengembalikan nama bulan Indonesia, atau string kosong jika di luar 1..12
func NamaBulan(bulan int) string {
	return BulanReverse[bulan]
}

// ParseBulan menerima nama bulan Indonesia (tidak peka kapital) atau angka
// 1..12 dan mengembalikan indeks bulannya
func ParseBulan(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for nama, idx := range BulanMap {
		if strings.EqualFold(nama, s) {
			return idx, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// IsIndikatorHotel memeriksa apakah kolom termasuk indikator yang dikenal
func IsIndikatorHotel(kolom string) bool {
	for _, ind := range IndikatorHotel {
		if ind == kolom {
			return true
		}
	}
	return false
}

// IsReadableTable memeriksa apakah tabel boleh dibaca lewat API
func IsReadableTable(nama string) bool {
	return nama == TableHotelKinerja || nama == TableAbsensi
}
