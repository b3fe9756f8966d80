package controllers

import (
	"vhts/dto"
	"vhts/response"
	"vhts/services"
	"vhts/utils"
	"vhts/validator"

	"github.com/gin-gonic/gin"
)

type IngestController struct {
	Ingest *services.IngestService
}

func NewIngestController(ingestService *services.IngestService) IngestController {
	return IngestController{
		Ingest: ingestService,
	}
}

func (ic IngestController) bindForm(c *gin.Context) (*dto.IngestForm, services.ConflictPolicy, bool) {
	var form dto.IngestForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return nil, "", false
	}

	if err := validator.ValidateIngestForm(&form); err != nil {
		handleServiceError(c, err)
		return nil, "", false
	}

	policy, err := services.ParsePolicy(form.Policy)
	if err != nil {
		handleServiceError(c, err)
		return nil, "", false
	}

	return &form, policy, true
}

// UploadHotelKinerja menerima file Excel kinerja hotel (multipart "file")
func (ic IngestController) UploadHotelKinerja(c *gin.Context) {
	form, policy, ok := ic.bindForm(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File Excel wajib dilampirkan")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "File tidak bisa dibuka")
		return
	}
	defer file.Close()

	result, err := ic.Ingest.IngestHotelKinerja(c.Request.Context(), file, form.Tahun, form.Bulan, policy)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.LogInfo("upload kinerja hotel %s: %d baris", fileHeader.Filename, result.JumlahRow)
	response.Success(c, result)
}

// UploadAbsensi menerima file Excel absensi PML/PCL (multipart "file")
func (ic IngestController) UploadAbsensi(c *gin.Context) {
	form, policy, ok := ic.bindForm(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File Excel wajib dilampirkan")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "File tidak bisa dibuka")
		return
	}
	defer file.Close()

	result, err := ic.Ingest.IngestAbsensi(c.Request.Context(), file, form.Tahun, form.Bulan, policy)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.LogInfo("upload absensi %s: %d baris", fileHeader.Filename, result.JumlahRow)
	response.Success(c, result)
}

// CheckPeriode memeriksa apakah sebuah periode sudah terisi, untuk
// konfirmasi di sisi UI sebelum upload
func (ic IngestController) CheckPeriode(c *gin.Context) {
	var query struct {
		Tabel string `form:"tabel" binding:"required"`
		Tahun int    `form:"tahun" binding:"required"`
		Bulan int    `form:"bulan" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ada, err := ic.Ingest.PeriodeSudahAda(c.Request.Context(), query.Tabel, query.Tahun, query.Bulan)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{"sudah_ada": ada})
}
