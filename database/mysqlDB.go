package database

import (
    "os"
    "time"

    "github.com/sirupsen/logrus"
    "gorm.io/driver/mysql"
    "gorm.io/gorm"
    "gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
    logLevel := logger.Info
    if os.Getenv("GIN_MODE") == "release" {
        logLevel = logger.Warn // quieter in production
    }

    dsn := os.Getenv("DB_DSN")
    if dsn == "" {
        dsn = "jubeli:jubeli1234@tcp(127.0.0.1:3306)/jubeli_db?charset=utf8mb4&parseTime=True&loc=Local"
    }
    var err error

    // Retry so the service survives the database coming up after it.
    maxRetries := 5
    retryInterval := 5 * time.Second
    for i := 0; i < maxRetries; i++ {
        DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
            Logger: logger.Default.LogMode(logLevel),
        })
        if err == nil {
            break
        }
        logrus.Warnf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
        if i < maxRetries-1 {
            time.Sleep(retryInterval)
        }
    }
    if err != nil {
        logrus.Fatalf("Failed to open database after %d attempts: %v", maxRetries, err)
    }

    sqlDB, err := DB.DB()
    if err != nil {
        logrus.Fatalf("Failed to get sql.DB: %v", err)
    }

    sqlDB.SetMaxIdleConns(10)
    sqlDB.SetMaxOpenConns(100)
    sqlDB.SetConnMaxLifetime(time.Hour)

    if err = sqlDB.Ping(); err != nil {
        logrus.Fatalf("Failed to ping database: %v", err)
    }

    var dbName string
    if err := DB.Raw("SELECT DATABASE()").Scan(&dbName).Error; err != nil {
        logrus.Fatalf("Failed to get current database: %v", err)
    }
    logrus.Infof("Connected to database: %s", dbName)

    logrus.Info("Database initialized successfully with GORM")
}
