package service

import (
	"fmt"
	"sort"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type SettingsService struct {
	repo   repository.SettingRepository
	logger *logrus.Logger
}

func NewSettingsService(repo repository.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo, logger: newLogger()}
}

// GetAll возвращает настройки, отсутствующие ключи заполняются значениями по умолчанию
func (s *SettingsService) GetAll() (map[string]string, error) {
	values, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for key, def := range models.DefaultSettings() {
		if _, ok := values[key]; !ok {
			values[key] = def
		}
	}
	return values, nil
}

// Set сохраняет одну настройку
func (s *SettingsService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: pusty klucz", ErrInvalidInput)
	}

	if err := s.repo.Set(map[string]string{key: strings.TrimSpace(value)}); err != nil {
		s.logger.WithError(err).WithField("key", key).Error("Failed to save setting")
		return err
	}
	s.logger.WithField("key", key).Info("Setting saved")
	return nil
}

func (s *SettingsService) SeedDefaults() error {
	return s.repo.SeedDefaults()
}

// FormatSettings - настройки для сообщения, ключи по алфавиту
func FormatSettings(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("⚙️ Ustawienia:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "• %s = %s\n", k, values[k])
	}
	return b.String()
}
