package db

import (
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/lumiere-salon/salon-scheduler/internal/config"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if IsPostgres(cfg.DBUrl) {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("failed to get sql.DB: %v", err)
		}

		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
		&models.Service{},
		&models.User{},
		&models.Message{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	Seed(db)

	return db
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://")
}

// Open liga Postgres para DSNs postgres:// e SQLite (modernc, sem
// cgo) para qualquer outro valor, tratado como caminho de arquivo.
func Open(dsn string) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	}

	if IsPostgres(dsn) {
		return gorm.Open(postgres.Open(dsn), gcfg)
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		gcfg,
	)
}

// Seed replica os dados iniciais do salão: catálogo de serviços e o
// usuário admin padrão, só quando as tabelas estão vazias.
func Seed(db *gorm.DB) {
	var count int64

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		services := []models.Service{
			{Name: "Corte & Estilo", Description: "Cortes personalizados que valorizam seu rosto e estilo de vida.", Price: 120, Icon: "✂️"},
			{Name: "Coloração Premium", Description: "Técnicas avançadas de coloração para um visual vibrante e saudável.", Price: 250, Icon: "🎨"},
			{Name: "Manicure & Pedicure", Description: "Cuidado completo para suas mãos e pés com produtos de alta qualidade.", Price: 60, Icon: "💅"},
			{Name: "Tratamentos Capilares", Description: "Hidratação, reconstrução e tratamentos para revigorar seus fios.", Price: 150, Icon: "✨"},
		}
		if err := db.Create(&services).Error; err != nil {
			log.Println("failed to seed services:", err)
		} else {
			log.Println("Services seeded.")
		}
	}

	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			log.Println("failed to hash default password:", err)
			return
		}

		admin := models.User{
			Username:     "admin",
			PasswordHash: string(hashed),
			FullName:     "Administrador",
			Role:         "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Println("failed to seed default admin user:", err)
		} else {
			log.Println("Default admin user created (username: admin, password: admin)")
		}
	}
}
