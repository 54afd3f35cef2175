package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lumiere-salon/salon-scheduler/internal/backup"
	"github.com/lumiere-salon/salon-scheduler/internal/config"
	dbpkg "github.com/lumiere-salon/salon-scheduler/internal/db"
	"github.com/lumiere-salon/salon-scheduler/internal/media"
	"github.com/lumiere-salon/salon-scheduler/internal/objstore"
	"github.com/lumiere-salon/salon-scheduler/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var uploader *objstore.Uploader
	if cfg.HasS3() {
		uploader = objstore.New(cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)
	}

	backupMgr := backup.NewManager(cfg.DBUrl, cfg.BackupDir, uploader)
	if !dbpkg.IsPostgres(cfg.DBUrl) {
		backupMgr.Schedule()
	}

	mediaStore := media.NewStore(cfg.UploadDir, uploader)

	r := gin.Default()

	r.Static("/uploads", cfg.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, backupMgr, mediaStore)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
