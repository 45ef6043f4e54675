package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port              string
	APP_ENV           string
	DBDriver          string
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	DBPath            string
	AppAuthKey        string
	AppEncKey         string
	CSRFKey           string
	AdminUser         string
	AdminPasswordHash string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		Port:              getEnv("APP_PORT", ":8080"),
		APP_ENV:           getEnv("APP_ENV", "development"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "category_admin"),
		DBPort:            os.Getenv("DB_PORT"),
		DBPath:            getEnv("DB_PATH", "category_admin.db"),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CSRFKey:           os.Getenv("CSRF_KEY"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

}

func (e ENV) IsProduction() bool {
	return e.APP_ENV == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
