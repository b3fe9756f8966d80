package utils

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vhts/errors"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"github.com/xuri/excelize/v2"
)

var nonWordRe = regexp.MustCompile(`[^\w]+`)

// Table adalah representasi tabular isi sheet: baris pertama jadi kolom,
// sisanya jadi data. Nilai sel disimpan sebagai string apa adanya.
type Table struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable membuat Table dari daftar kolom dan baris data
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{Columns: columns, Rows: rows}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		if _, ok := t.index[col]; !ok {
			t.index[col] = i
		}
	}
}

// HasColumn memeriksa keberadaan kolom
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Value mengambil nilai sel baris ke-row pada kolom col.
// Baris pendek dianggap punya sel kosong di kolom yang tidak terisi.
func (t *Table) Value(row int, col string) string {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}

// NormalizeHeader menormalkan satu nama kolom: trim, transliterasi aksen
// ke ASCII, lowercase, dan setiap deretan karakter non-word diganti satu
// underscore. Operasi ini idempoten.
func NormalizeHeader(h string) string {
	h = strings.ToLower(unidecode.Unidecode(strings.TrimSpace(h)))
	return nonWordRe.ReplaceAllString(h, "_")
}

// NormalizeColumns menormalkan seluruh nama kolom tabel in place
func NormalizeColumns(t *Table) *Table {
	for i, col := range t.Columns {
		t.Columns[i] = NormalizeHeader(col)
	}
	t.reindex()
	return t
}

// ReadSheet memuat sheet pertama workbook menjadi Table.
// Header langsung dinormalkan.
func ReadSheet(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFile, "File tidak bisa dibaca sebagai workbook Excel", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFile, "Gagal membaca isi sheet", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeEmptySheet, "Sheet kosong, tidak ada header", errors.ErrEmptySheet)
	}

	return NormalizeColumns(NewTable(rows[0], rows[1:])), nil
}

// ResolveColumns memetakan nama kolom kanonik ke kolom sumber di tabel.
// Alias dicoba sesuai urutan deklarasi, alias pertama yang cocok menang.
// Jika ada kolom kanonik tanpa alias yang cocok, seluruh resolusi gagal
// dengan daftar kolom yang hilang dan kolom yang tersedia.
func ResolveColumns(t *Table, columnMap map[string][]string) (map[string]string, error) {
	resolved := make(map[string]string, len(columnMap))
	var missing []string

	for canonical, aliases := range columnMap {
		found := false
		for _, alias := range aliases {
			if t.HasColumn(alias) {
				resolved[canonical] = alias
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, canonical)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		// Kolom yang sudah dipakai canonical lain tidak ikut jadi kandidat saran
		var sisa []string
		dipakai := make(map[string]bool, len(resolved))
		for _, src := range resolved {
			dipakai[src] = true
		}
		for _, col := range t.Columns {
			if !dipakai[col] {
				sisa = append(sisa, col)
			}
		}
		pesan := fmt.Sprintf("Kolom wajib tidak ditemukan: %v. Kolom tersedia di file: %v", missing, t.Columns)
		if saran := saranKolom(missing, columnMap, sisa); len(saran) > 0 {
			pesan += fmt.Sprintf(". Mungkin maksud Anda: %s", strings.Join(saran, ", "))
		}
		return nil, errors.NewAppError(errors.ErrCodeMissingColumns, pesan, errors.ErrMissingColumns)
	}
	return resolved, nil
}

// Tingkat kemiripan dua string berdasarkan jarak levenshtein, 0..1
func kemiripan(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// saranKolom mencari kandidat "mungkin maksud Anda" untuk tiap kolom wajib
// yang hilang: kolom file terdekat dipilih lewat closestmatch, lalu disaring
// dengan ambang kemiripan supaya tebakan jauh tidak ikut dilaporkan.
func saranKolom(missing []string, columnMap map[string][]string, available []string) []string {
	if len(available) == 0 {
		return nil
	}
	cm := closestmatch.New(available, []int{2, 3})

	var saran []string
	for _, canonical := range missing {
		best, bestSkor := "", 0.0
		for _, alias := range columnMap[canonical] {
			kandidat := cm.Closest(alias)
			if kandidat == "" {
				continue
			}
			if skor := kemiripan(alias, kandidat); skor > bestSkor {
				best, bestSkor = kandidat, skor
			}
		}
		if bestSkor >= 0.5 {
			saran = append(saran, fmt.Sprintf("%s -> %s", best, canonical))
		}
	}
	return saran
}

// CleanNumber mengubah isi sel menjadi float. Sel kosong menghasilkan nil.
// Koma pemisah ribuan dibuang sebelum parsing; nilai yang tetap tidak bisa
// diparse merupakan value error yang menghentikan batch.
func CleanNumber(val string) (*float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(val, ",", ""))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.NewAppError(
			errors.ErrCodeInvalidNumber,
			fmt.Sprintf("Nilai %q tidak bisa diparse sebagai angka", val),
			err,
		)
	}
	return &f, nil
}

// CleanInt seperti CleanNumber tapi hasilnya dibulatkan ke int.
// Dipakai untuk tahun/bulan dan kolom target/realisasi.
func CleanInt(val string) (*int, error) {
	f, err := CleanNumber(val)
	if err != nil || f == nil {
		return nil, err
	}
	n := int(*f)
	return &n, nil
}
