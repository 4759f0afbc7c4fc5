package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Session struct {
		Secret string
	}

	WhatsApp struct {
		Phone string
	}

	Cart struct {
		Dir string
	}

	Upload struct {
		MaxSize int64
		Dir     string
	}

	Admin struct {
		Email    string
		Password string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/bellavista.db"),
	}

	config.Session.Secret = getEnv("SESSION_SECRET", "development-secret")

	// Number the orders get sent to when the client doesn't pick one.
	config.WhatsApp.Phone = getEnv("WHATSAPP_PHONE", "5215512345678")

	config.Cart.Dir = getEnv("CART_DIR", "./db/carts")

	maxSize := getEnv("UPLOAD_MAX_SIZE", "10485760") // 10MB default
	if size, err := strconv.ParseInt(maxSize, 10, 64); err == nil {
		config.Upload.MaxSize = size
	} else {
		config.Upload.MaxSize = 10485760
	}
	config.Upload.Dir = getEnv("UPLOAD_DIR", "./public/images/products")

	config.Admin.Email = getEnv("ADMIN_EMAIL", "")
	config.Admin.Password = getEnv("ADMIN_PASSWORD", "")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
