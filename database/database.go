package database

import (
	"fmt"
	"quizboard/config"
	"quizboard/logger"
	"quizboard/models"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database, migrates it and stores it globally.
func ConnectDb() {
	db, err := Open(config.AppConfig)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", "driver", config.AppConfig.DBDriver, "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("Failed to get database instance", "error", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", "error", err)
	}

	Database = DbInstance{Db: db}
}

// Open connects with the driver named by cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	default:
		return nil, fmt.Errorf("database.Open: unsupported driver %q", cfg.DBDriver)
	}

	return gorm.Open(dialector, &gorm.Config{Logger: gormLogger()})
}

// gormLogger sends slow queries and errors to the application logger. Lookups
// that find nothing are expected (404s, ownership misses) and stay quiet.
func gormLogger() gormlogger.Interface {
	return gormlogger.New(logger.Log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	logger.Log.Info("Running migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizAttempt{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("Migrations completed successfully")
	return nil
}
