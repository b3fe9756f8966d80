package routes

import (
	"vhts/constants"
	"vhts/controllers"
	middlewares "vhts/middleware"
	"vhts/services"
	"vhts/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {
	lg := logger.NewDefaultLogger(logger.InfoLevel)
	cache := services.NewTableCache(redisCli)

	authService := services.NewAuthService(services.AuthServiceOptions{DB: db, Logger: lg})
	ingestService := services.NewIngestService(services.IngestServiceOptions{DB: db, Logger: lg, Cache: cache})
	reportService := services.NewReportService(services.ReportServiceOptions{DB: db, Logger: lg, Cache: cache})
	exportService := services.NewExportService(services.ExportServiceOptions{Report: reportService, Logger: lg})

	authController := controllers.NewAuthController(authService)
	ingestController := controllers.NewIngestController(ingestService)
	reportController := controllers.NewReportController(reportService)
	exportController := controllers.NewExportController(exportService)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/register", authController.RegisterUser)
	v1.DELETE("/auth/logout", authController.Logout)

	// Upload data hanya untuk admin
	v1.POST("/ingest/hotel", middlewares.AuthMiddleware(constants.RoleAdmin), ingestController.UploadHotelKinerja)
	v1.POST("/ingest/absensi", middlewares.AuthMiddleware(constants.RoleAdmin), ingestController.UploadAbsensi)
	v1.GET("/ingest/check", middlewares.AuthMiddleware(constants.RoleAdmin), ingestController.CheckPeriode)

	v1.GET("/tables/:name", middlewares.AuthMiddleware(), reportController.GetTable)
	v1.GET("/report/hotel", middlewares.AuthMiddleware(), reportController.GetHotelIndikator)
	v1.GET("/report/hotel/daftar", middlewares.AuthMiddleware(), reportController.GetDaftarHotel)
	v1.GET("/report/absensi", middlewares.AuthMiddleware(), reportController.GetRekapAbsensi)

	v1.GET("/export/hotel", middlewares.AuthMiddleware(), exportController.DownloadHotelKinerja)
	v1.GET("/export/absensi", middlewares.AuthMiddleware(), exportController.DownloadAbsensi)
}
