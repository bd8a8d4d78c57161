package seed

import (
	"context"
	"errors"

	"pterostore/domain"
	psqlRepo "pterostore/internal/repository/postgres"
	"pterostore/pkg/config"
	"pterostore/pkg/logger"
	"pterostore/pkg/utils"

	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@antidonasi.store"
	adminUsername = "admin"
	adminPassword = "admin123"
)

var products = []domain.Product{
	// NodeJS VIP (A1-A6)
	{Name: "NodeJS Kroco", Description: "🟢 A1 - NodeJS Kroco - 3GB, 100% CPU", Category: domain.CategoryNodeJS, RAM: 3, CPU: 100, Price: 5000, Emoji: "🟢", IsActive: true},
	{Name: "NodeJS Karbit", Description: "🟡 A2 - NodeJS Karbit - 5GB, 150% CPU", Category: domain.CategoryNodeJS, RAM: 5, CPU: 150, Price: 7500, Emoji: "🟡", IsActive: true},
	{Name: "NodeJS Standar", Description: "🟠 A3 - NodeJS Standar - 7GB, 200% CPU", Category: domain.CategoryNodeJS, RAM: 7, CPU: 200, Price: 10000, Emoji: "🟠", IsActive: true},
	{Name: "NodeJS Sepuh", Description: "🔴 A4 - NodeJS Sepuh - 11GB, 250% CPU", Category: domain.CategoryNodeJS, RAM: 11, CPU: 250, Price: 12500, Emoji: "🔴", IsActive: true},
	{Name: "NodeJS Suhu", Description: "🟣 A5 - NodeJS Suhu - 13GB, 300% CPU", Category: domain.CategoryNodeJS, RAM: 13, CPU: 300, Price: 15000, Emoji: "🟣", IsActive: true},
	{Name: "NodeJS Pro Max", Description: "💎 A6 - NodeJS Pro Max - 16GB, 400% CPU", Category: domain.CategoryNodeJS, RAM: 16, CPU: 400, Price: 20000, Emoji: "💎", IsActive: true},

	// VPS (B1-B6)
	{Name: "VPS Kroco", Description: "🟢 B1 - VPS Kroco - 3GB, 100% CPU", Category: domain.CategoryVPS, RAM: 3, CPU: 100, Price: 7500, Emoji: "🟢", IsActive: true},
	{Name: "VPS Karbit", Description: "🟡 B2 - VPS Karbit - 5GB, 150% CPU", Category: domain.CategoryVPS, RAM: 5, CPU: 150, Price: 10000, Emoji: "🟡", IsActive: true},
	{Name: "VPS Standar", Description: "🟠 B3 - VPS Standar - 7GB, 200% CPU", Category: domain.CategoryVPS, RAM: 7, CPU: 200, Price: 15000, Emoji: "🟠", IsActive: true},
	{Name: "VPS Sepuh", Description: "🔴 B4 - VPS Sepuh - 9GB, 250% CPU", Category: domain.CategoryVPS, RAM: 9, CPU: 250, Price: 20000, Emoji: "🔴", IsActive: true},
	{Name: "VPS Suhu", Description: "🟣 B5 - VPS Suhu - 11GB, 300% CPU", Category: domain.CategoryVPS, RAM: 11, CPU: 300, Price: 25000, Emoji: "🟣", IsActive: true},
	{Name: "VPS Pro Max", Description: "💎 B6 - VPS Pro Max - 13GB, 350% CPU", Category: domain.CategoryVPS, RAM: 13, CPU: 350, Price: 35000, Emoji: "💎", IsActive: true},

	// Python (C1-C6)
	{Name: "Python Kroco", Description: "🟢 C1 - Python Kroco - 3GB, 100% CPU", Category: domain.CategoryPython, RAM: 3, CPU: 100, Price: 3000, Emoji: "🟢", IsActive: true},
	{Name: "Python Karbit", Description: "🟡 C2 - Python Karbit - 5GB, 150% CPU", Category: domain.CategoryPython, RAM: 5, CPU: 150, Price: 5000, Emoji: "🟡", IsActive: true},
	{Name: "Python Standar", Description: "🟠 C3 - Python Standar - 7GB, 150% CPU", Category: domain.CategoryPython, RAM: 7, CPU: 150, Price: 7500, Emoji: "🟠", IsActive: true},
	{Name: "Python Sepuh", Description: "🔴 C4 - Python Sepuh - 9GB, 200% CPU", Category: domain.CategoryPython, RAM: 9, CPU: 200, Price: 10000, Emoji: "🔴", IsActive: true},
	{Name: "Python Suhu", Description: "🟣 C5 - Python Suhu - 11GB, 250% CPU", Category: domain.CategoryPython, RAM: 11, CPU: 250, Price: 12500, Emoji: "🟣", IsActive: true},
	{Name: "Python Pro Max", Description: "💎 C6 - Python Pro Max - 13GB, 300% CPU", Category: domain.CategoryPython, RAM: 13, CPU: 300, Price: 17500, Emoji: "💎", IsActive: true},
}

// Run upserts the admin account, the product tiers, and the default
// settings row. Existing rows are left untouched, so re-running is safe.
func Run(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	settingsRepo := psqlRepo.NewSettingsRepository(db)

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		passwordHash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return err
		}

		fullName := "Administrator"
		whatsapp := "62895395590009"
		admin := domain.User{
			Email:    adminEmail,
			Username: adminUsername,
			Password: passwordHash,
			Role:     domain.RoleAdmin,
			FullName: &fullName,
			Whatsapp: &whatsapp,
			IsActive: true,
		}
		if err := userRepo.Create(ctx, &admin); err != nil {
			return err
		}
		logger.Info("Created admin user", "email", adminEmail)
	}

	for i := range products {
		if _, err := productRepo.FindByName(ctx, products[i].Name); err == nil {
			logger.Info("Product already exists", "name", products[i].Name)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := productRepo.Create(ctx, &products[i]); err != nil {
			return err
		}
		logger.Info("Created product", "name", products[i].Name)
	}

	settings := domain.Settings{
		PterodactylURL:    cfg.Panel.URL,
		PterodactylAPIKey: cfg.Panel.APIKey,
		ClientAPIKey:      cfg.Panel.ClientAPIKey,
		QrisImage:         cfg.Panel.QrisImage,
		PaymentInfo:       cfg.Panel.PaymentInfo,
		WhatsappNumber:    cfg.Panel.WhatsappNumber,
	}
	if err := settingsRepo.Upsert(ctx, &settings); err != nil {
		return err
	}

	logger.Info("Seeding finished")
	return nil
}
