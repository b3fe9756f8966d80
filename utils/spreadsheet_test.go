package utils

import (
	"bytes"
	"testing"

	"vhts/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Hotel Name  ", "hotel_name"},
		{"TPK (%)", "tpk_"},
		{"tpk_", "tpk_"},
		{"Nama   Hotel", "nama_hotel"},
		{"RLMTA", "rlmta"},
		{"target", "target"},
		{"Réalisasi", "realisasi"},
		{"Persèntase (%)", "persentase_"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeHeader(c.in), "input %q", c.in)
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	headers := []string{"Hotel Name", "TPK (%)", " Bulan ", "realisasi", "Nama   Hotel"}
	for _, h := range headers {
		once := NormalizeHeader(h)
		assert.Equal(t, once, NormalizeHeader(once))
	}
}

func TestResolveColumnsMissing(t *testing.T) {
	tbl := NewTable([]string{"hotel", "pml", "pcl"}, nil)
	columnMap := map[string][]string{
		"hotel": {"hotel", "nama_hotel"},
		"pml":   {"pml"},
		"pcl":   {"pcl"},
		"tpk":   {"tpk", "tpk_persen"},
	}

	_, err := ResolveColumns(tbl, columnMap)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeMissingColumns, appErr.Code)
	// Pesan memuat kolom yang hilang dan kolom yang tersedia
	assert.Contains(t, appErr.Message, "tpk")
	assert.Contains(t, appErr.Message, "hotel")
}

func TestResolveColumnsSaranTypo(t *testing.T) {
	// Header salah ketik masih terdeteksi sebagai kandidat terdekat
	tbl := NewTable([]string{"hotel", "pml", "pcl", "tpk_prsen"}, nil)
	columnMap := map[string][]string{
		"hotel": {"hotel", "nama_hotel"},
		"pml":   {"pml"},
		"pcl":   {"pcl"},
		"tpk":   {"tpk", "tpk_persen"},
	}

	_, err := ResolveColumns(tbl, columnMap)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeMissingColumns, appErr.Code)
	assert.Contains(t, appErr.Message, "Mungkin maksud Anda")
	assert.Contains(t, appErr.Message, "tpk_prsen -> tpk")
}

func TestResolveColumnsTanpaSaran(t *testing.T) {
	// Kolom yang sama sekali tidak mirip tidak menghasilkan tebakan
	tbl := NewTable([]string{"hotel", "pml", "pcl"}, nil)
	columnMap := map[string][]string{
		"hotel": {"hotel"},
		"gpr":   {"gpr"},
	}

	_, err := ResolveColumns(tbl, columnMap)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.NotContains(t, appErr.Message, "Mungkin maksud Anda")
}

func TestResolveColumnsFirstAliasWins(t *testing.T) {
	tbl := NewTable([]string{"nama_hotel", "hotel", "tpk_persen", "tpk"}, nil)
	columnMap := map[string][]string{
		"hotel": {"hotel", "nama_hotel"},
		"tpk":   {"tpk", "tpk_persen"},
	}

	resolved, err := ResolveColumns(tbl, columnMap)
	require.NoError(t, err)
	assert.Equal(t, "hotel", resolved["hotel"])
	assert.Equal(t, "tpk", resolved["tpk"])
	assert.Len(t, resolved, 2)
}

func TestCleanNumber(t *testing.T) {
	val, err := CleanNumber("1,234")
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, 1234.0, *val)

	val, err = CleanNumber("  56.7 ")
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, 56.7, *val)

	val, err = CleanNumber("")
	require.NoError(t, err)
	assert.Nil(t, val)

	val, err = CleanNumber("   ")
	require.NoError(t, err)
	assert.Nil(t, val)

	_, err = CleanNumber("abc")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidNumber))
}

func TestCleanInt(t *testing.T) {
	val, err := CleanInt("2,025")
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, 2025, *val)

	val, err = CleanInt("")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestReadSheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Hotel Name", "TPK (%)", "GPR"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Hotel A", "55.5", "120"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Hotel B", "", "95"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := ReadSheet(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"hotel_name", "tpk_", "gpr"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Hotel A", tbl.Value(0, "hotel_name"))
	assert.Equal(t, "95", tbl.Value(1, "gpr"))
	assert.Equal(t, "", tbl.Value(1, "tpk_"))
}

func TestValueShortRow(t *testing.T) {
	tbl := NewTable([]string{"a", "b", "c"}, [][]string{{"1"}})
	assert.Equal(t, "1", tbl.Value(0, "a"))
	assert.Equal(t, "", tbl.Value(0, "c"))
	assert.Equal(t, "", tbl.Value(5, "a"))
}
