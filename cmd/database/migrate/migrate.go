package migration

import (
	"ReliefLink/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ItemType{}); err != nil {
		log.Fatalf("Error migrating item type database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.District{}, &entities.Tehsil{}, &entities.Village{}); err != nil {
		log.Fatalf("Error migrating location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryEntry{}); err != nil {
		log.Fatalf("Error migrating inventory entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ResupplyRequest{}); err != nil {
		log.Fatalf("Error migrating resupply request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationOffer{}); err != nil {
		log.Fatalf("Error migrating donation offer database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Transaction{}); err != nil {
		log.Fatalf("Error migrating transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
