package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Modeva-Ecommerce/storefront-api/config"
	"github.com/Modeva-Ecommerce/storefront-api/models"
	"github.com/Modeva-Ecommerce/storefront-api/services"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// sampleCatalog is created on an empty database when requested
var sampleCatalog = map[string][]struct {
	Title string
	Price string
	Stock int
}{
	"Beauty": {
		{"Lotion - Hand Cream", "12.50", 40},
		{"Soap - Lavender Bar", "4.25", 120},
	},
	"Grocery": {
		{"Bread Ww Cluster", "4.99", 20},
		{"Coffee - Dark Roast", "14.00", 35},
		{"Tea - Earl Grey", "6.75", 60},
	},
	"Stationery": {
		{"Notebook - A5 Dotted", "8.90", 75},
	},
}

// main creates a staff account and optionally a sample catalog
// Usage: go run ./cmd/seed
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STOREFRONT - Staff & Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := models.AutoMigrate(config.StoreGorm); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	email, password, firstName := getStaffCredentials()

	// Check if the account already exists
	var existing models.User
	if err := config.StoreGorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	passwordHash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	staff := models.User{
		Email:        email,
		FirstName:    firstName,
		PasswordHash: passwordHash,
		IsStaff:      true,
		Permissions:  models.PermissionList{models.PermViewHistory},
	}
	if err := config.StoreGorm.Create(&staff).Error; err != nil {
		log.Fatalf("Failed to create staff user: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Staff User Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", staff.ID)
	fmt.Printf("Email: %s\n", staff.Email)
	fmt.Println()

	if askYesNo("Seed sample catalog? (y/n): ") {
		if err := seedCatalog(config.StoreGorm); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Use the returned token for staff requests")
	fmt.Println()
}

// seedCatalog creates collections and products unless products already exist
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("⚠️  %d products already present, skipping catalog", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for title, products := range sampleCatalog {
			collection := models.Collection{Title: title}
			if err := tx.Create(&collection).Error; err != nil {
				return err
			}

			for i, p := range products {
				product := models.Product{
					Title:        p.Title,
					Slug:         slugify(p.Title),
					UnitPrice:    decimal.RequireFromString(p.Price),
					Inventory:    p.Stock,
					CollectionID: collection.ID,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				if i == 0 {
					collection.FeaturedProductID = &product.ID
					if err := tx.Save(&collection).Error; err != nil {
						return err
					}
				}
			}
			log.Printf("✓ Collection '%s' seeded with %d products", title, len(products))
		}
		return nil
	})
}

func slugify(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}

// getStaffCredentials prompts for the staff account details
func getStaffCredentials() (email, password, firstName string) {
	fmt.Println("Enter Staff Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("First name: ")
		fmt.Scanln(&firstName)
		if firstName != "" {
			break
		}
		fmt.Println("❌ First name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if len(password) < 8 {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, firstName
}

func askYesNo(prompt string) bool {
	fmt.Print(prompt)
	var answer string
	fmt.Scanln(&answer)
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
