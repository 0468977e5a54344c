package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"gadgetlend-backend/internal/config"
)

// Seeds a development database: schema from scratch, one admin account, a
// small gadget catalog and a few students.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	adminEmail := flag.String("admin-email", "admin@gadgetlend.local", "Admin account email")
	adminPassword := flag.String("admin-password", "changeme123", "Admin account password")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Schema applied")

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO admins (email, name, password_hash) VALUES ($1, $2, $3)`,
		*adminEmail, "Program Admin", string(hash),
	); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin account created: %s", *adminEmail)

	if err := seedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := seedStudents(db); err != nil {
		log.Fatalf("Failed to seed students: %v", err)
	}

	log.Println("Seed data loaded")
}

func seedCatalog(db *sql.DB) error {
	types := []string{"Laptop", "Tablet", "Camera", "Arduino Kit", "VR Headset"}
	typeIDs := make(map[string]int)
	for _, name := range types {
		var id int
		if err := db.QueryRow(
			`INSERT INTO gadget_types (type_name) VALUES ($1) RETURNING id`, name,
		).Scan(&id); err != nil {
			return err
		}
		typeIDs[name] = id
	}

	gadgets := []struct {
		serial, name, typeName, desc string
		priceCents                   int
	}{
		{"LT-0001", "ThinkPad T14", "Laptop", "14-inch, 16GB RAM", 15000},
		{"LT-0002", "MacBook Air M2", "Laptop", "13-inch, 8GB RAM", 20000},
		{"TB-0001", "iPad 10th Gen", "Tablet", "With Apple Pencil", 10000},
		{"CM-0001", "Canon EOS M50", "Camera", "Kit lens included", 25000},
		{"AR-0001", "Arduino Starter Kit", "Arduino Kit", "Uno R3 with sensors", 5000},
		{"VR-0001", "Meta Quest 3", "VR Headset", "With two controllers", 30000},
	}
	for _, g := range gadgets {
		if _, err := db.Exec(
			`INSERT INTO gadgets (serial_number, gadget_name, type_id, description, price_per_day_cents, status)
			 VALUES ($1, $2, $3, $4, $5, 'Available')`,
			g.serial, g.name, typeIDs[g.typeName], g.desc, g.priceCents,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedStudents(db *sql.DB) error {
	now := time.Now()
	students := []struct {
		name, email, phone, major string
		year                      int
		status                    string
	}{
		{"Maria Santos", "maria.santos@university.edu", "+63-917-555-0101", "Computer Science", 3, "Active"},
		{"Jose Ramirez", "jose.ramirez@university.edu", "+63-917-555-0102", "Multimedia Arts", 2, "Active"},
		{"Ana Cruz", "ana.cruz@university.edu", "+63-917-555-0103", "Engineering", 4, "Pending"},
	}
	for _, s := range students {
		if _, err := db.Exec(
			`INSERT INTO students (name, email, phone_number, major, year, account_status, created_on, updated_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
			s.name, s.email, s.phone, s.major, s.year, s.status, now,
		); err != nil {
			return err
		}
	}
	return nil
}
