package config

import (
	"fmt"
	"log"

	"chatbox/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

const DefaultDBPath = "database.db"

func ConnectDB() {
	var err error
	path := GetEnvDefault("DB_PATH", DefaultDBPath)

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.ChatHistory{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	fmt.Println("Successfully connected to db")
}
