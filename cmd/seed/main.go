package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"showroom/internal/config"
	"showroom/internal/db"
	"showroom/internal/model"
	"showroom/internal/repository"
)

type sampleCar struct {
	name     string
	price    int64
	year     int
	carType  string
	imageURL string
}

var sampleCars = []sampleCar{
	{"Toyota Corolla", 10000, 2018, "Sedan", "https://images.unsplash.com/photo-1619682817481-e994891cd1f5"},
	{"Honda Civic", 12000, 2019, "Sedan", "https://images.unsplash.com/photo-1605816988069-b11383b50717"},
	{"Toyota Land Cruiser", 50000, 2020, "SUV", "https://images.unsplash.com/photo-1650530579355-7ad9d4766043"},
	{"Nissan X-Trail", 20000, 2018, "SUV", "https://images.unsplash.com/photo-1742697167580-af91e3ead35e"},
	{"Volkswagen Golf", 15000, 2017, "Hatchback", "https://images.unsplash.com/photo-1678120609593-1e86e6a631b8"},
	{"Mazda 2", 14000, 2019, "Hatchback", "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTqqyDyCnuJe5BoxVpAazmFSIdL1J02YHnpEQ"},
	{"Ford F-150", 55000, 2021, "Truck", "https://images.unsplash.com/photo-1711512302274-8aafe96481bb"},
	{"Isuzu D-Max", 40000, 2020, "Truck", "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSyGxyp46ClCXn8oLUPP4F2CG7PV4mM5EvGgg"},
	{"BMW 4 Series", 45000, 2019, "Coupe", "https://www.bmw.co.za/content/dam/bmw/common/all-models/4-series/gran-coupe/2024/navigation/bmw-4-series-gran-coupe-modelfinder.png"},
	{"Toyota Hiace", 25000, 2018, "Van", "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQYNwXk-kAz8l28r3rLF2MO4NxWvybtM0xF1A"},
}

// Seed destructively rebuilds the schema and loads fixed sample data: one
// showroom, ten cars, and two admin accounts.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Drop everything: the seed always starts from a clean schema
	tables := []interface{}{
		&model.Car{},
		&model.Admin{},
		&model.Buyer{},
		&model.Contact{},
		&model.Showroom{},
	}
	for _, table := range tables {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}
	log.Println("Tables dropped")

	if err := gormDB.AutoMigrate(
		&model.Showroom{},
		&model.Car{},
		&model.Admin{},
		&model.Buyer{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	showroomRepo := repository.NewShowroomRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	showroom := &model.Showroom{Name: "Main Showroom", Location: "Nairobi"}
	if err := showroomRepo.Create(ctx, showroom); err != nil {
		log.Fatalf("Failed to create showroom: %v", err)
	}
	log.Printf("Created showroom %q (id=%d)", showroom.Name, showroom.ID)

	for _, item := range sampleCars {
		car := &model.Car{
			Name:       item.name,
			Price:      decimal.NewFromInt(item.price),
			Year:       item.year,
			Type:       item.carType,
			ImageURL:   item.imageURL,
			ShowroomID: &showroom.ID,
		}
		if err := carRepo.Create(ctx, car); err != nil {
			log.Fatalf("Failed to create car %q: %v", item.name, err)
		}
	}
	log.Printf("Created %d sample cars", len(sampleCars))

	admins := []struct {
		username string
		password string
	}{
		{"admin1", "password123"},
		{"admin2", "password456"},
	}
	for _, item := range admins {
		admin := &model.Admin{
			Username:   item.username,
			ShowroomID: &showroom.ID,
		}
		if err := admin.SetPassword(item.password); err != nil {
			log.Fatalf("Failed to hash password for %s: %v", item.username, err)
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin %s: %v", item.username, err)
		}
	}
	log.Printf("Created %d admin accounts", len(admins))

	log.Println("Database seeded with sample data!")
}
