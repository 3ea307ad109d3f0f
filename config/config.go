package config

import (
	"fmt"
	"os"

	"github.com/zachhersick/macro-muse-mvp/models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.DailyGoal{},
		&models.FoodLog{},
		&models.WeightLog{},
		&models.BodyCompositionLog{},
		&models.BodyMeasurement{},
		&models.FoodItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedFoodCatalog()
}

// seedFoodCatalog fills the food search catalog on first boot.
// FirstOrCreate keyed by name keeps restarts idempotent.
func seedFoodCatalog() {
	items := []models.FoodItem{
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: "100g"},
		{Name: "Brown Rice", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, ServingSize: "100g"},
		{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, ServingSize: "1 medium"},
		{Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingSize: "100g"},
		{Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, ServingSize: "100g"},
		{Name: "Salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: "100g"},
		{Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, ServingSize: "100g"},
		{Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, ServingSize: "2 large"},
		{Name: "Oatmeal", Calories: 68, Protein: 2.4, Carbs: 12, Fat: 1.4, ServingSize: "100g"},
		{Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, ServingSize: "100g"},
	}

	for _, it := range items {
		item := it
		if err := DB.Where("name = ?", item.Name).FirstOrCreate(&item).Error; err != nil {
			log.Errorf("seeding food catalog entry %q: %v", item.Name, err)
		}
	}
}
