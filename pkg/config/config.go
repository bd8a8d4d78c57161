package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Panel    PanelConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type UploadConfig struct {
	// Dir is where payment-proof images land on disk; PublicPath is the
	// URL prefix recorded on the order row.
	Dir        string
	PublicPath string
}

// PanelConfig holds the upstream pterodactyl panel defaults used when
// seeding the settings row.
type PanelConfig struct {
	URL            string
	APIKey         string
	ClientAPIKey   string
	QrisImage      string
	PaymentInfo    string
	WhatsappNumber string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pterodactyl Store API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pterostore"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Upload: UploadConfig{
			Dir:        getEnv("UPLOAD_DIR", "public/uploads/payment-proofs"),
			PublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/uploads/payment-proofs"),
		},
		Panel: PanelConfig{
			URL:            getEnv("PTERODACTYL_URL", "https://your-panel.com"),
			APIKey:         getEnv("PTERODACTYL_API_KEY", "ptla_your-api-key-here"),
			ClientAPIKey:   getEnv("PTERODACTYL_CLIENT_KEY", "ptlc_your-client-key-here"),
			QrisImage:      getEnv("QRIS_IMAGE_URL", "/qris.png"),
			PaymentInfo:    getEnv("PAYMENT_INFO", "Transfer ke: 085123456789 (Dana/OVO/GoPay)"),
			WhatsappNumber: getEnv("WHATSAPP_NUMBER", "62895395590009"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
