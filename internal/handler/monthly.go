package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"ewidencja-bot/internal/export"
	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showMonthOverview показывает сводку месяца по отделу
func (h *Handler) showMonthOverview(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	q, err := parseMonthQuery(args, h.now(), h.config.DefaultDepartment)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /month [rok miesiąc] [dział]")
		return
	}

	overview, err := h.services.Attendance.MonthOverview(q.Year, q.Month, q.Department)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"year":       q.Year,
			"month":      q.Month,
			"department": q.Department,
		}).Error("Failed to build month overview")
		h.replyError(chatID, "Błąd zestawienia", err)
		return
	}

	h.reply(chatID, service.FormatOverview(overview))
}

// showQuarterly показывает квартальную сводку; отдел по умолчанию - obsługa
func (h *Handler) showQuarterly(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year := h.now().Year()
	department := h.config.DefaultDepartment

	fields := strings.Fields(args)
	if len(fields) > 2 {
		h.reply(chatID, "❌ Format: /quarter [rok] [dział]")
		return
	}
	for _, field := range fields {
		if y, err := strconv.Atoi(field); err == nil {
			year = y
			continue
		}
		dept, err := parseDepartment(field)
		if err != nil {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		department = dept
	}

	rows, catalog, err := h.services.Attendance.Quarterly(year, department)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Error("Failed to build quarterly summary")
		h.replyError(chatID, "Błąd zestawienia kwartalnego", err)
		return
	}

	h.reply(chatID, service.FormatQuarterly(year, department, rows, catalog))
}

// showEmployeeCard показывает карточку сотрудника за месяц
func (h *Handler) showEmployeeCard(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, year, month, err := parseEmployeeMonth(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /card id [rok miesiąc]")
		return
	}

	card, err := h.services.Attendance.EmployeeCard(id, year, month)
	if err != nil {
		h.replyError(chatID, fmt.Sprintf("Błąd karty pracownika #%d", id), err)
		return
	}

	h.reply(chatID, service.FormatCard(card))
}

// exportMonth отправляет сводку месяца файлом xlsx
func (h *Handler) exportMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	q, err := parseMonthQuery(args, h.now(), h.config.DefaultDepartment)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /export [rok miesiąc] [dział]")
		return
	}

	overview, err := h.services.Attendance.MonthOverview(q.Year, q.Month, q.Department)
	if err != nil {
		h.replyError(chatID, "Błąd zestawienia", err)
		return
	}
	settings, err := h.services.Settings.GetAll()
	if err != nil {
		h.replyError(chatID, "Błąd pobierania ustawień", err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonth(&buf, overview, settings[models.SettingCompanyName]); err != nil {
		logrus.WithError(err).Error("Failed to export month")
		h.replyError(chatID, "Błąd eksportu", err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  export.MonthFileName(overview),
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("📎 %s %d - %s", service.MonthName(q.Month), q.Year, q.Department)
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to send export")
	}
}
