package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SaborReal/restaurant-manager/internal/config"
	"github.com/SaborReal/restaurant-manager/internal/models"
)

// SeedAdmin garante a conta de administrador definida por env.
// Sem ADMIN_EMAIL/ADMIN_PASSWORD nada é criado.
func SeedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.User{}).
		Where("email = ?", cfg.AdminEmail).
		Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(cfg.AdminPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		log.Printf("seed admin: failed to hash password: %v", err)
		return
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	log.Printf("seed admin: created %s", admin.Email)
}
