package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response mendefinisikan struktur response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success mengembalikan response berhasil
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Berhasil",
		Data: data,
	})
}

// BadRequest mengembalikan response permintaan tidak valid
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequestWithData mengembalikan response tidak valid beserta detail
func BadRequestWithData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
		Data: data,
	})
}

// Conflict mengembalikan response konflik data (mis. username sudah ada)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError mengembalikan response kesalahan server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Terjadi kesalahan server",
	})
}

// Unauthorized mengembalikan response belum terautentikasi
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Belum terautentikasi",
	})
}

// Forbidden mengembalikan response tidak memiliki akses
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Tidak memiliki akses",
	})
}

// NotFound mengembalikan response tidak ditemukan
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Tidak ditemukan",
	})
}
