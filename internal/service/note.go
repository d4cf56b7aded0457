package service

import (
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/repository"
	"ewidencja-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

type NoteService struct {
	repo   repository.NoteRepository
	logger *logrus.Logger
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo, logger: newLogger()}
}

// Save сохраняет примечание к месяцу; пустой текст удаляет его
func (s *NoteService) Save(employeeID uint, year, month int, text string) error {
	if _, err := calendar.DaysInMonth(year, month); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return s.repo.Delete(employeeID, year, month)
	}

	err := s.repo.Upsert(&models.Note{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Note:       text,
	})
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"employee_id": employeeID,
			"year":        year,
			"month":       month,
		}).Error("Failed to save note")
		return err
	}
	return nil
}

// Get возвращает текст примечания или пустую строку
func (s *NoteService) Get(employeeID uint, year, month int) (string, error) {
	note, err := s.repo.Get(employeeID, year, month)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", nil
	}
	return note.Note, nil
}
