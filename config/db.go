package config

import (
	"fmt"
	"log"
	"os"

	"community-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "community_db")
	sslMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which services rely on as the authoritative
	// already-exists signal.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Community{},
		&models.Member{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// SeedRoles ensures the base roles exist. Community creation depends on
// "Community Admin" being present.
func SeedRoles(db *gorm.DB) {
	names := []string{
		models.RoleCommunityAdmin,
		models.RoleCommunityModerator,
		models.RoleMember,
	}
	for _, name := range names {
		role := models.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			log.Fatal("Failed to seed roles: ", err)
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
