package controllers

import (
	"strconv"

	"vhts/dto"
	"vhts/response"
	"vhts/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Report *services.ReportService
}

func NewReportController(reportService *services.ReportService) ReportController {
	return ReportController{
		Report: reportService,
	}
}

// GetTable mengembalikan seluruh isi tabel untuk difilter di sisi UI
func (rc ReportController) GetTable(c *gin.Context) {
	tabel := c.Param("name")

	rows, err := rc.Report.ReadTable(c.Request.Context(), tabel)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, rows)
}

// GetHotelIndikator mengembalikan grafik dan tabel satu indikator hotel
func (rc ReportController) GetHotelIndikator(c *gin.Context) {
	var filter dto.HotelFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := rc.Report.HotelIndikator(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// GetDaftarHotel mengembalikan pilihan hotel untuk widget filter
func (rc ReportController) GetDaftarHotel(c *gin.Context) {
	tahun, err := strconv.Atoi(c.Query("tahun"))
	if err != nil {
		response.BadRequest(c, "Parameter tahun wajib berupa angka")
		return
	}

	hotels, err := rc.Report.DaftarHotel(c.Request.Context(), tahun)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, hotels)
}

// GetRekapAbsensi mengembalikan rekap absensi per petugas
func (rc ReportController) GetRekapAbsensi(c *gin.Context) {
	var filter dto.AbsensiFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	views, err := rc.Report.RekapAbsensi(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, views)
}
