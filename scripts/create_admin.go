// scripts/create_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kmpicazo/HR201System/config"
	"github.com/kmpicazo/HR201System/database"
	"github.com/kmpicazo/HR201System/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	database.Connect(cfg)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "hradmin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("HR admin already exists with username:", username)
		os.Exit(0)
	}

	u := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         "HR Administrator",
		Role:         "hr_admin",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("HR admin created successfully!")
	fmt.Println("   Username:", username)
	fmt.Println("   Password:", password, "(plain, remember to change later!)")
}
