package dto

// HotelFilter membatasi data kinerja hotel: satu indikator, satu tahun,
// rentang bulan, dan daftar hotel opsional (kosong = semua).
type HotelFilter struct {
	Indikator  string   `form:"indikator" binding:"required"`
	Tahun      int      `form:"tahun" binding:"required"`
	BulanAwal  int      `form:"bulan_awal"`
	BulanAkhir int      `form:"bulan_akhir"`
	Hotel      []string `form:"hotel"`
}

// IndikatorBulanan adalah satu titik grafik: rata-rata indikator per bulan
type IndikatorBulanan struct {
	Bulan     int     `json:"bulan"`
	NamaBulan string  `json:"nama_bulan"`
	RataRata  float64 `json:"rata_rata"`
}

// HotelIndikatorRow adalah satu baris tabel detail indikator
type HotelIndikatorRow struct {
	Hotel     string   `json:"hotel"`
	Bulan     int      `json:"bulan"`
	NamaBulan string   `json:"nama_bulan"`
	Nilai     *float64 `json:"nilai"`
}

// HotelIndikatorResult memuat grafik dan tabel untuk satu indikator
type HotelIndikatorResult struct {
	Indikator string              `json:"indikator"`
	Grafik    []IndikatorBulanan  `json:"grafik"`
	Tabel     []HotelIndikatorRow `json:"tabel"`
}

// AbsensiFilter membatasi rekap absensi. Role: ""/gabungan, "PML", atau "PCL".
type AbsensiFilter struct {
	Tahun      int      `form:"tahun" binding:"required"`
	BulanAwal  int      `form:"bulan_awal"`
	BulanAkhir int      `form:"bulan_akhir"`
	Role       string   `form:"role"`
	Nama       []string `form:"nama"`
}

// AbsensiView adalah baris rekap absensi yang sudah diratakan per petugas
type AbsensiView struct {
	Bulan      int     `json:"bulan"`
	NamaBulan  string  `json:"nama_bulan"`
	Nama       string  `json:"nama"`
	Role       string  `json:"role"`
	Target     *int    `json:"target"`
	Realisasi  *int    `json:"realisasi"`
	Persentase float64 `json:"persentase"`
}
