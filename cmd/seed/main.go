package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"fanhub/database"
	"fanhub/internal/config"
	"fanhub/internal/http-api/models"
	"fanhub/internal/logger"

	"gorm.io/gorm"
)

// SeedData mirrors the layout of seed_data.json. Rows carry explicit ids so
// quotes and episodes can reference shows and characters across the file.
type SeedData struct {
	Shows      []models.Show      `json:"shows"`
	Characters []models.Character `json:"characters"`
	Episodes   []models.Episode   `json:"episodes"`
	Quotes     []models.Quote     `json:"quotes"`
	Users      []models.User      `json:"users"`
}

func main() {
	log.Println("Starting catalog seed...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.GoEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.ConnectDB(cfg, zlog)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedFile := "seed_data.json"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	log.Printf("Reading data from %s...", seedFile)
	data, err := readSeedFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	log.Printf("Loaded %d shows, %d characters, %d episodes, %d quotes, %d users",
		len(data.Shows), len(data.Characters), len(data.Episodes), len(data.Quotes), len(data.Users))

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := importRows(tx, data.Shows, "shows"); err != nil {
			return err
		}
		if err := importRows(tx, data.Characters, "characters"); err != nil {
			return err
		}
		if err := importRows(tx, data.Episodes, "episodes"); err != nil {
			return err
		}
		if err := importRows(tx, data.Quotes, "quotes"); err != nil {
			return err
		}
		return importRows(tx, data.Users, "users")
	})
	if err != nil {
		log.Fatalf("Seed failed, nothing committed: %v", err)
	}

	log.Println("Catalog seed completed successfully!")
}

func readSeedFile(filename string) (*SeedData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var data SeedData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return &data, nil
}

// importRows saves each row as-is, so rerunning the seed updates rows in
// place instead of duplicating them.
func importRows[T any](tx *gorm.DB, rows []T, label string) error {
	for i := range rows {
		if err := tx.Save(&rows[i]).Error; err != nil {
			return fmt.Errorf("import %s row %d: %w", label, i+1, err)
		}
	}
	log.Printf("  %d %s imported", len(rows), label)
	return nil
}
