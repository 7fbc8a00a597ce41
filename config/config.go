package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env  string `env:"APP_ENV" env-default:"local"`
	Port string `env:"PORT" env-default:"3000"`

	DBDriver   string `env:"DB_DRIVER" env-default:"postgres"` // postgres, mysql, sqlite
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"quizboard"`

	JWTKey    string        `env:"JWT_SECRET_KEY" env-default:"defaultSecret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	SaltRound int           `env:"SALT_ROUND" env-default:"10"`

	// Cron spec for closing quizzes past their closesAt.
	QuizCloseSchedule string `env:"QUIZ_CLOSE_SCHEDULE" env-default:"* * * * *"`

	// Used by the dashboard CLI to reach a running server.
	APIBaseURL     string        `env:"API_BASE_URL" env-default:"http://localhost:3000"`
	APIToken       string        `env:"API_TOKEN"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from the environment, loading a .env file first if present
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg, err := Read()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	AppConfig = cfg

	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// Read parses the process environment into a Config without touching AppConfig.
func Read() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
