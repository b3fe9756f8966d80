package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"vhts/constants"
	"vhts/dto"
	"vhts/response"
	"vhts/services"
	"vhts/utils"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Export *services.ExportService
}

func NewExportController(exportService *services.ExportService) ExportController {
	return ExportController{
		Export: exportService,
	}
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// queryBulan menerima angka maupun nama bulan Indonesia ("3" atau "Maret")
func queryBulan(c *gin.Context, key string) int {
	bulan, _ := constants.ParseBulan(c.Query(key))
	return bulan
}

// DownloadHotelKinerja mengirim workbook kinerja hotel sebagai unduhan
func (ec ExportController) DownloadHotelKinerja(c *gin.Context) {
	tahun := queryInt(c, "tahun")
	if tahun == 0 {
		response.BadRequest(c, "Parameter tahun wajib diisi")
		return
	}

	data, err := ec.Export.ExportHotelKinerja(
		c.Request.Context(),
		tahun,
		queryBulan(c, "bulan_awal"),
		queryBulan(c, "bulan_akhir"),
		c.QueryArray("hotel"),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.LogInfo("download kinerja_hotel.xlsx tahun %d", tahun)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=kinerja_hotel_%d.xlsx", tahun))
	c.Data(http.StatusOK, constants.MimeXlsx, data)
}

// DownloadAbsensi mengirim workbook rekap absensi sebagai unduhan
func (ec ExportController) DownloadAbsensi(c *gin.Context) {
	var filter dto.AbsensiFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := ec.Export.ExportAbsensi(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.LogInfo("download absensi.xlsx tahun %d", filter.Tahun)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=absensi_%d.xlsx", filter.Tahun))
	c.Data(http.StatusOK, constants.MimeXlsx, data)
}
