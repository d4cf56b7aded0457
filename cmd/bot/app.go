package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ewidencja-bot/internal/config"
	"ewidencja-bot/internal/handler"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/internal/service"
	"ewidencja-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// initLogger настраивает стандартный логгер; логгеры репозиториев и сервисов берут его уровень и вывод
func initLogger(cfg *config.BotConfig) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		logrus.WithError(err).Warn("Failed to create log directory, logging to stderr only")
		return
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     90, // days
	}))
}

// openDatabase открывает SQLite и создает недостающие таблицы
func openDatabase(cfg *config.BotConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DatabaseURL); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	gormLogLevel := logger.Warn
	if cfg.LogLevel >= logrus.DebugLevel {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite ограничения
		Logger:                                   logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	// SQLite пишет одним соединением
	sqlDB.SetMaxOpenConns(1)

	// Включаем поддержку внешних ключей (требуется для SQLite)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Warnf("Failed to enable foreign keys: %v", err)
	}

	return db, nil
}

// closeDatabase закрывает соединение с БД
func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}
}

// newServices создает репозитории и сервисы и заполняет справочники при первом запуске
func newServices(db *gorm.DB, cfg *config.BotConfig) (*service.Services, error) {
	repos, err := repository.NewRepositories(db)
	if err != nil {
		return nil, fmt.Errorf("create repositories: %w", err)
	}

	services := service.NewServices(repos, cfg.DefaultDailyNorm)
	if err := services.AbsenceTypes.SeedDefaults(); err != nil {
		return nil, fmt.Errorf("seed absence types: %w", err)
	}
	if err := services.Settings.SeedDefaults(); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	return services, nil
}

func runBot(cfg *config.BotConfig) error {
	cfg.RequireTelegram()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	services, err := newServices(db, cfg)
	if err != nil {
		return err
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		return fmt.Errorf("create Telegram client: %w", err)
	}
	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, services, cfg)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()
	logrus.Info("Bot stopped gracefully")
	return nil
}
