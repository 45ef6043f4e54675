package configs

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxRetries         = 10
	retryDelay         = 5 * time.Second
	slowQueryThreshold = 200 * time.Millisecond
)

// GormConfig is shared by the server, the CLI and tests. TranslateError lets
// repositories detect unique index violations through gorm.ErrDuplicatedKey.
// Query errors and slow queries go to logger; lookups that find nothing are
// not errors here and stay silent.
func GormConfig(logger *zap.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

func Dialector(env ENV) (gorm.Dialector, error) {
	switch env.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser,
			env.DBPassword,
			env.DBHost,
			defaultPort(env.DBPort, "3306"),
			env.DBName,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			env.DBHost,
			defaultPort(env.DBPort, "5432"),
			env.DBUser,
			env.DBPassword,
			env.DBName,
		)
		return postgres.Open(dsn), nil
	case "sqlite", "":
		return sqlite.Open(env.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func OpenConnection(env ENV, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(env)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("Attempting to connect to database",
			zap.String("driver", env.DBDriver),
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
		)

		db, err := gorm.Open(dialector, GormConfig(logger))
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("Database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			logger.Warn("Failed to ping database, retrying", zap.Error(pingErr), zap.Duration("delay", retryDelay))
		} else {
			lastErr = err
			logger.Warn("Failed to open GORM connection, retrying", zap.Error(err), zap.Duration("delay", retryDelay))
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the %s database after %d retries: %w", env.DBDriver, maxRetries, lastErr)
}

func defaultPort(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}
