package database

import (
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"feedback-analysis/models"
)

var DB *gorm.DB

// InitDB opens the SQLite store at path and migrates the schema. The
// foreign_keys pragma is required for the users→analyses cascade delete.
func InitDB(path string) {
	dsn := path + "?_foreign_keys=on"
	if strings.Contains(path, "?") {
		dsn = path + "&_foreign_keys=on"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.Analysis{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected successfully")
}

func GetDB() *gorm.DB {
	return DB
}
