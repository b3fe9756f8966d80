package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"vhts/models"
	"vhts/services/logger"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB membuka database sqlite in-memory terpisah per test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.HotelKinerja{}, &models.Absensi{}))
	return db
}

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func newTestIngestService(t *testing.T) (*IngestService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewIngestService(IngestServiceOptions{DB: db, Logger: testLogger(), Cache: nil})
	return svc, db
}

// makeWorkbook membangun workbook satu sheet di memori: baris pertama
// header, sisanya data
func makeWorkbook(t *testing.T, rows ...[]interface{}) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		require.NoError(t, f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}
