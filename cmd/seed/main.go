package main

import (
	"log"
	"os"

	"metro-chatbot-be/internal/model"
	"metro-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding Metro directory data")

	seedProducts(db)
	seedTechnicians(db)
	seedSalesmen(db)
	seedEmployees(db)

	color.Green("Seeding completed!")
}

func seedProducts(db *gorm.DB) {
	color.Yellow("\nSeeding Products...")

	products := []model.Product{
		{Name: "Solar Panel 450W Mono", Description: "High efficiency monocrystalline solar panel for rooftop installations", Category: "solar", Specifications: "450W, 21.3% efficiency, 25 year warranty", Price: 189.99},
		{Name: "Solar Panel 550W Bifacial", Description: "Bifacial panel capturing reflected light for ground-mounted arrays", Category: "solar", Specifications: "550W, bifacial gain up to 25%", Price: 249.00},
		{Name: "Solar Inverter 5kW Hybrid", Description: "Hybrid inverter with battery support for home solar systems", Category: "inverter", Specifications: "5kW, MPPT dual tracker, WiFi monitoring", Price: 1150.00},
		{Name: "Pure Sine Wave Inverter 3kW", Description: "Off-grid pure sine wave inverter for sensitive electronics", Category: "inverter", Specifications: "3kW continuous, 6kW surge, 24V DC input", Price: 520.00},
		{Name: "Diesel Generator 10kVA", Description: "Silent diesel generator for backup power in homes and shops", Category: "generator", Specifications: "10kVA, 62dB at 7m, electric start", Price: 3400.00},
		{Name: "Portable Petrol Generator 3.5kW", Description: "Compact petrol generator for job sites and events", Category: "generator", Specifications: "3.5kW, 4-stroke, 8h runtime at 50% load", Price: 780.00},
		{Name: "Distribution Board 12-Way", Description: "Consumer unit with surge protection for residential wiring", Category: "electrical", Specifications: "12-way, 63A main switch, SPD type 2", Price: 95.50},
		{Name: "Armoured Cable 4-Core 16mm", Description: "Steel wire armoured cable for underground power runs", Category: "electrical", Specifications: "4x16mm, SWA, per 100m drum", Price: 410.00},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			log.Printf("Product '%s' already exists, skipping...", p.Name)
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating product '%s': %v", p.Name, err)
		} else {
			log.Printf("Created product: %s", p.Name)
		}
	}
}

func seedTechnicians(db *gorm.DB) {
	color.Yellow("\nSeeding Technicians...")

	technicians := []model.Technician{
		{Name: "Ravi Patel", Specialty: "solar", Contact: "ravi.patel@metro.example", Experience: 8},
		{Name: "Dana Whitfield", Specialty: "generator", Contact: "dana.whitfield@metro.example", Experience: 12},
		{Name: "Omar Haddad", Specialty: "inverter", Contact: "omar.haddad@metro.example", Experience: 6},
		{Name: "Lucia Romero", Specialty: "electrical", Contact: "lucia.romero@metro.example", Experience: 10},
	}

	for _, t := range technicians {
		var existing model.Technician
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			log.Printf("Technician '%s' already exists, skipping...", t.Name)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating technician '%s': %v", t.Name, err)
		} else {
			log.Printf("Created technician: %s (%s)", t.Name, t.Specialty)
		}
	}
}

func seedSalesmen(db *gorm.DB) {
	color.Yellow("\nSeeding Salesmen...")

	salesmen := []model.Salesman{
		{Name: "Priya Nair", Specialty: "solar", Contact: "priya.nair@metro.example"},
		{Name: "Tom Becker", Specialty: "generator", Contact: "tom.becker@metro.example"},
		{Name: "Aisha Bello", Specialty: "electrical", Contact: "aisha.bello@metro.example"},
	}

	for _, s := range salesmen {
		var existing model.Salesman
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			log.Printf("Salesman '%s' already exists, skipping...", s.Name)
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			color.Red("Error creating salesman '%s': %v", s.Name, err)
		} else {
			log.Printf("Created salesman: %s (%s)", s.Name, s.Specialty)
		}
	}
}

func seedEmployees(db *gorm.DB) {
	color.Yellow("\nSeeding Employees...")

	employees := []model.Employee{
		{Name: "Grace Lindqvist", Position: "manager", Department: "operations", Contact: "grace.lindqvist@metro.example"},
		{Name: "Hassan Idris", Position: "manager", Department: "sales", Contact: "hassan.idris@metro.example"},
		{Name: "Mei Tanaka", Position: "coordinator", Department: "support", Contact: "mei.tanaka@metro.example"},
		{Name: "Viktor Olsen", Position: "engineer", Department: "installations", Contact: "viktor.olsen@metro.example"},
	}

	for _, e := range employees {
		var existing model.Employee
		if err := db.Where("name = ?", e.Name).First(&existing).Error; err == nil {
			log.Printf("Employee '%s' already exists, skipping...", e.Name)
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			color.Red("Error creating employee '%s': %v", e.Name, err)
		} else {
			log.Printf("Created employee: %s (%s)", e.Name, e.Position)
		}
	}
}
