package cmd

import (
	"fmt"
	"log"

	"github.com/itparc/asset-management/internal/directory"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			// Children before parents so the foreign keys hold.
			tables := []string{
				"access_tokens", "declarations", "licenses", "maintenances",
				"interventions", "equipments", "employers", "users", "services",
			}
			for _, table := range tables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		adminEmail := "admin@itparc.local"
		adminName := "Park Administrator"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists:", adminEmail)
		} else {
			if err := db.Exec("INSERT INTO users (full_name, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, 'Admin', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)", adminName, adminEmail, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		}

		services := []string{directory.DefaultServiceName, "IT Support", "Accounting"}
		for _, name := range services {
			row := db.Raw("SELECT 1 FROM services WHERE name = ?", name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO services (name, created_at, updated_at) VALUES (?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)", name).Error; err != nil {
				log.Fatalf("failed to insert service %s: %v", name, err)
			}
			fmt.Println("Seeded service:", name)
		}

		employerEmail := "employer@itparc.local"
		employerName := "Sample Employer"
		row = db.Raw("SELECT 1 FROM users WHERE email = ?", employerEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("employer user already exists:", employerEmail)
			return
		}

		if err := db.Exec("INSERT INTO users (full_name, email, password_hash, role, created_at, updated_at) VALUES (?, ?, ?, 'Employer', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)", employerName, employerEmail, string(hash)).Error; err != nil {
			log.Fatalf("failed to insert employer user: %v", err)
		}

		var employerUserID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", employerEmail).Row().Scan(&employerUserID); err != nil {
			log.Fatalf("failed to lookup employer user id: %v", err)
		}

		var serviceID int64
		if err := db.Raw("SELECT id FROM services WHERE name = ?", "IT Support").Row().Scan(&serviceID); err != nil {
			log.Fatalf("failed to lookup service id: %v", err)
		}

		if err := db.Exec("INSERT INTO employers (user_id, poste, phone, service_id, is_active, created_at, updated_at) VALUES (?, 'Technician', '0600000000', ?, true, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)", employerUserID, serviceID).Error; err != nil {
			log.Fatalf("failed to insert employer: %v", err)
		}
		fmt.Println("Seeded employer user:", employerEmail)
	},
}
