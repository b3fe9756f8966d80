package dto

// IngestForm adalah form multipart untuk upload file Excel.
// Policy menentukan perlakuan jika periode sudah ada: reject|replace|append.
type IngestForm struct {
	Tahun  int    `form:"tahun" binding:"required"`
	Bulan  int    `form:"bulan" binding:"required"`
	Policy string `form:"policy"`
}

// IngestResult merangkum hasil satu pemanggilan ingest
type IngestResult struct {
	Tabel      string `json:"tabel"`
	JumlahRow  int    `json:"jumlah_row"`
	Kebijakan  string `json:"kebijakan"`
	RowDihapus int    `json:"row_dihapus,omitempty"`
}
