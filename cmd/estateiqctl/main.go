package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Agboweroh/estateiq-backend/config"
	"github.com/Agboweroh/estateiq-backend/internal/database"
	"github.com/Agboweroh/estateiq-backend/models"
)

var rootCmd = &cobra.Command{
	Use:   "estateiqctl",
	Short: "Operational tooling for the EstateIQ backend",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, pool, err := openDB()
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("migration completed")
		return nil
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the bootstrap admin account if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		db, pool, err := openDB()
		if err != nil {
			return err
		}
		defer pool.Close()

		var count int64
		db.Model(&models.User{}).Where("email = ?", cfg.DefaultAdminEmail).Count(&count)
		if count > 0 {
			fmt.Println("admin account already exists")
			return nil
		}

		// plaintext here; the model's BeforeSave hook hashes exactly once
		admin := models.User{
			Name:     cfg.DefaultAdminName,
			Email:    cfg.DefaultAdminEmail,
			Password: cfg.DefaultAdminPassword,
			Role:     models.RoleAdmin,
			IsActive: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		fmt.Printf("created admin account %s\n", admin.Email)
		return nil
	},
}

func openDB() (*gorm.DB, *database.ConnectionPool, error) {
	cfg := config.LoadConfig()
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool.GetDB(), pool, nil
}

func main() {
	_ = godotenv.Load()

	rootCmd.AddCommand(migrateCmd, seedAdminCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
