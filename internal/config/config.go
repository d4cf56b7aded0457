package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken     string
	TelegramDebug     bool
	DatabaseURL       string
	LogLevel          logrus.Level
	LogFile           string
	DefaultDailyNorm  float64
	DefaultDepartment string
}

var instance *BotConfig
var once sync.Once

func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = &BotConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		instance.TelegramDebug = getEnvAsBool("TELEGRAM_DEBUG", false)
		instance.DatabaseURL = getEnv("DATABASE_URL", "data/ewidencja.db")
		instance.DefaultDepartment = getEnv("DEFAULT_DEPARTMENT", "Obsługa")

		instance.DefaultDailyNorm = getEnvAsFloat("DEFAULT_DAILY_NORM", 8)
		if instance.DefaultDailyNorm <= 0 || instance.DefaultDailyNorm > 24 {
			logrus.Fatal("DEFAULT_DAILY_NORM must be in range (0, 24]")
		}

		level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
		if err != nil {
			logrus.Warnf("unknown LOG_LEVEL, using info: %s", err.Error())
			level = logrus.InfoLevel
		}
		instance.LogLevel = level
		instance.LogFile = getEnv("LOG_FILE", "")
	})

	return instance
}

// RequireTelegram проверяет настройки, нужные только для запуска бота
func (c *BotConfig) RequireTelegram() {
	if c.TelegramToken == "" {
		logrus.Fatal("could not get bot token")
	}
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}

	return defaultVal
}
