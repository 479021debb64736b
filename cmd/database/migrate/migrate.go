package migration

import (
	"fmt"
	"log"

	"tastyshare/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Profile{}); err != nil {
		log.Fatalf("Error migrating profile table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Instruction{}); err != nil {
		log.Fatalf("Error migrating instruction table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeCategory{}); err != nil {
		log.Fatalf("Error migrating recipe category table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeVote{}); err != nil {
		log.Fatalf("Error migrating recipe vote table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscriber{}); err != nil {
		log.Fatalf("Error migrating subscriber table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
