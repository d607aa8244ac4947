package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"fixitnow-server/config"
	"fixitnow-server/utils"
)

type demoWorker struct {
	FullName          string
	Email             string
	PhoneNumber       string
	ServiceType       string
	Experience        string
	YearsOfExperience int
	ServiceArea       string
	WillingToTravel   bool
	IsAvailable       bool
}

var demoWorkers = []demoWorker{
	{
		FullName:          "Mike Rivera",
		Email:             "mike.rivera@example.com",
		PhoneNumber:       "+12125550101",
		ServiceType:       "plumber",
		Experience:        "Residential plumbing, pipe repair and water heater installs.",
		YearsOfExperience: 8,
		ServiceArea:       "Manhattan",
		WillingToTravel:   true,
		IsAvailable:       true,
	},
	{
		FullName:          "Dana Okafor",
		Email:             "dana.okafor@example.com",
		PhoneNumber:       "+12125550102",
		ServiceType:       "electrician",
		Experience:        "Licensed electrician. Panel upgrades, wiring, lighting.",
		YearsOfExperience: 12,
		ServiceArea:       "Brooklyn",
		WillingToTravel:   false,
		IsAvailable:       true,
	},
	{
		FullName:          "Sam Whitfield",
		Email:             "sam.whitfield@example.com",
		PhoneNumber:       "+12125550103",
		ServiceType:       "mechanic",
		Experience:        "Mobile mechanic. Brakes, diagnostics, oil changes at your door.",
		YearsOfExperience: 6,
		ServiceArea:       "Queens",
		WillingToTravel:   true,
		IsAvailable:       true,
	},
	{
		FullName:          "Alex Tran",
		Email:             "alex.tran@example.com",
		PhoneNumber:       "+12125550104",
		ServiceType:       "all",
		Experience:        "General handyman covering plumbing, electrical and auto work.",
		YearsOfExperience: 15,
		ServiceArea:       "New York Metro",
		WillingToTravel:   true,
		IsAvailable:       true,
	},
}

// seedDemoData inserts demo worker accounts for local development. Existing
// emails are skipped so the seeder is safe to re-run.
func seedDemoData() error {
	db := config.AppConfig.Database
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to connect for seeding: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for seeding: %w", err)
	}

	passwordHash, err := utils.HashPassword("demo1234")
	if err != nil {
		return err
	}

	seeded := 0
	for _, w := range demoWorkers {
		var exists bool
		if err := conn.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", w.Email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		var userID uint
		err := conn.QueryRow(`
			INSERT INTO users (full_name, email, phone_number, password_hash, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, 'worker', true, NOW(), NOW())
			RETURNING id`,
			w.FullName, w.Email, w.PhoneNumber, passwordHash,
		).Scan(&userID)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", w.Email, err)
		}

		_, err = conn.Exec(`
			INSERT INTO worker_profiles
				(user_id, full_name, phone_number, service_type, experience, years_of_experience,
				 service_area, willing_to_travel, is_available, status, total_earnings, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'APPROVED', 0, NOW(), NOW())`,
			userID, w.FullName, w.PhoneNumber, w.ServiceType, w.Experience,
			w.YearsOfExperience, w.ServiceArea, w.WillingToTravel, w.IsAvailable,
		)
		if err != nil {
			return fmt.Errorf("failed to seed worker profile for %s: %w", w.Email, err)
		}
		seeded++
	}

	log.Printf("Seeded %d demo workers", seeded)
	return nil
}
