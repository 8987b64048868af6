// Command seed creates the admin account and the initial catalog data.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"home-maintenance-server/config"
	"home-maintenance-server/database"
	"home-maintenance-server/logger"
	"home-maintenance-server/models"
	"home-maintenance-server/repository"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
)

const (
	adminPhone    = "+966501111111"
	adminName     = "Admin User"
	adminEmail    = "admin@specialtechnician.com"
	adminPassword = "admin123"
)

func main() {
	var (
		createAdmin = flag.Bool("admin", false, "create the admin account if no admin exists")
		resetAdmin  = flag.Bool("reset-admin", false, "recreate the admin account credentials")
		areas       = flag.Bool("areas", false, "seed the service areas when none exist")
		catalog     = flag.Bool("services", false, "replace the service catalog with the initial services")
		contact     = flag.Bool("contact", false, "create the default contact info when missing")
		all         = flag.Bool("all", false, "run every seeder except -reset-admin")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}
	cfg := config.Load()
	logger.Init("home-maintenance-seed", cfg.Server.Env, cfg.Log.Level)

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer database.Close(db)

	ctx := context.Background()
	steps := []struct {
		enabled bool
		name    string
		run     func(context.Context, *gorm.DB) error
	}{
		{*createAdmin || *all, "admin", seedAdmin},
		{*resetAdmin, "reset-admin", resetAdminAccount},
		{*areas || *all, "areas", seedAreas},
		{*catalog || *all, "services", seedServices},
		{*contact || *all, "contact", seedContact},
	}

	ran := false
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		ran = true
		if err := step.run(ctx, db); err != nil {
			log.Error().Err(err).Str("step", step.name).Msg("❌ Seeding failed")
			os.Exit(1)
		}
	}
	if !ran {
		flag.Usage()
		os.Exit(2)
	}
}

func seedAdmin(ctx context.Context, db *gorm.DB) error {
	users := repository.NewUserRepository(db)

	existing, err := users.FindFirstAdmin(ctx)
	if err == nil {
		log.Warn().Str("email", stringOrEmpty(existing.Email)).Msg("⚠️ Admin user already exists")
		return nil
	}
	if !types.IsKind(err, types.ErrorKindNotFound) {
		return err
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	email := adminEmail
	admin := &models.User{
		Phone:        adminPhone,
		Name:         adminName,
		Email:        &email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", adminEmail).Msg("✅ Admin user created successfully")
	return nil
}

// resetAdminAccount restores the default admin credentials. The account is
// updated in place when it exists so its id stays stable.
func resetAdminAccount(ctx context.Context, db *gorm.DB) error {
	users := repository.NewUserRepository(db)

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin, err := users.FindByEmail(ctx, adminEmail)
	if types.IsKind(err, types.ErrorKindNotFound) {
		return seedAdmin(ctx, db)
	}
	if err != nil {
		return err
	}

	admin.Phone = adminPhone
	admin.Name = adminName
	admin.PasswordHash = hash
	admin.Role = models.RoleAdmin
	if err := users.Save(ctx, admin); err != nil {
		return err
	}

	log.Info().Str("email", adminEmail).Msg("✅ Admin credentials reset")
	return nil
}

func seedAreas(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.ServiceArea{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Warn().Int64("count", count).Msg("⚠️ Service areas already exist")
		return nil
	}

	areas := repository.NewAreaRepository(db)
	for _, area := range initialAreas() {
		area := area
		if err := areas.Create(ctx, &area); err != nil {
			return err
		}
		log.Info().Str("city", area.CityName).Str("arabic", area.ArabicName).Msg("📍 Created city")
	}
	return nil
}

func seedServices(ctx context.Context, db *gorm.DB) error {
	result := db.WithContext(ctx).Where("1 = 1").Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	log.Info().Int64("removed", result.RowsAffected).Msg("🗑️ Cleared existing services")

	services := repository.NewServiceRepository(db)
	for _, service := range initialServices() {
		service := service
		if err := service.Validate(); err != nil {
			return err
		}
		if err := services.Create(ctx, &service); err != nil {
			return err
		}
		log.Info().Str("name", service.Name).Float64("price", service.Price).Msg("✅ Created service")
	}
	return nil
}

func seedContact(ctx context.Context, db *gorm.DB) error {
	contacts := repository.NewContactRepository(db)

	_, err := contacts.Get(ctx)
	if err == nil {
		log.Info().Msg("ℹ️ Contact info already exists")
		return nil
	}
	if !types.IsKind(err, types.ErrorKindNotFound) {
		return err
	}

	if err := contacts.Save(ctx, models.DefaultContact()); err != nil {
		return err
	}
	log.Info().Msg("✅ Default contact info created")
	return nil
}

func initialAreas() []models.ServiceArea {
	return []models.ServiceArea{
		{CityName: "Jazan", ArabicName: "جازان", Status: models.StatusActive, DeliveryTime: 24, Notes: "Main hub - serves all surrounding areas"},
		{CityName: "Sabya", ArabicName: "صبيا", Status: models.StatusActive, DeliveryTime: 24, Notes: "Covered service area"},
		{CityName: "Abo Arish", ArabicName: "ابو عريش", Status: models.StatusActive, DeliveryTime: 24, Notes: "Covered service area"},
		{CityName: "Samtah", ArabicName: "صامطة", Status: models.StatusActive, DeliveryTime: 24, Notes: "Covered service area"},
	}
}

func initialServices() []models.Service {
	return []models.Service{
		{
			Name:        "AC Unit Cleaning",
			Description: "Complete cleaning of air conditioning unit including filter replacement and duct cleaning. Improves air quality and efficiency.",
			Price:       150,
			Category:    models.CategoryCleaning,
			Duration:    1,
			Icon:        "🧹",
			Status:      models.StatusActive,
			Notes:       "Includes filter replacement",
		},
		{
			Name:        "Refrigeration Repair",
			Description: "Repair of refrigeration systems and cooling issues. Expert diagnosis and quick turnaround time.",
			Price:       250,
			Category:    models.CategoryRepair,
			Duration:    2,
			Icon:        "❄️",
			Status:      models.StatusActive,
			Notes:       "Parts cost may apply",
		},
		{
			Name:        "AC Maintenance Plan",
			Description: "Monthly maintenance plan to keep your AC system running smoothly. Includes inspection and cleaning.",
			Price:       100,
			Category:    models.CategoryMaintenance,
			Duration:    1,
			Icon:        "🔧",
			Status:      models.StatusActive,
			Notes:       "Monthly recurring service",
		},
		{
			Name:        "HVAC Installation",
			Description: "Professional installation of new HVAC systems. Includes setup, testing, and warranty coverage.",
			Price:       500,
			Category:    models.CategoryInstallation,
			Duration:    4,
			Icon:        "📦",
			Status:      models.StatusActive,
			Notes:       "Price varies by unit size",
		},
		{
			Name:        "System Inspection",
			Description: "Comprehensive inspection of your HVAC system to identify any potential issues before they become problems.",
			Price:       75,
			Category:    models.CategoryInspection,
			Duration:    1,
			Icon:        "🔍",
			Status:      models.StatusActive,
			Notes:       "Detailed report included",
		},
		{
			Name:        "Emergency Service",
			Description: "Same-day emergency HVAC repair service available 24/7 for urgent cooling or heating issues.",
			Price:       350,
			Category:    models.CategoryRepair,
			Duration:    2,
			Icon:        "🚨",
			Status:      models.StatusActive,
			Notes:       "Available 24/7",
		},
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
