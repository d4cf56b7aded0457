package handler

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showProfile показывает историю сотрудника по месяцам
func (h *Handler) showProfile(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := parseID(strings.TrimSpace(args))
	if err != nil {
		h.reply(chatID, "❌ Format: /profile id")
		return
	}

	profile, err := h.services.Attendance.Profile(id)
	if err != nil {
		h.replyError(chatID, fmt.Sprintf("Błąd profilu #%d", id), err)
		return
	}

	h.reply(chatID, service.FormatProfile(profile))
}

// saveNote сохраняет или удаляет примечание к месяцу
func (h *Handler) saveNote(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, year, month, text, err := parseNote(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if _, err := h.services.Employees.Get(id); err != nil {
		h.replyError(chatID, fmt.Sprintf("Pracownik #%d", id), err)
		return
	}

	if err := h.services.Notes.Save(id, year, month, text); err != nil {
		h.replyError(chatID, "Błąd zapisu uwag", err)
		return
	}

	if text == "" {
		h.reply(chatID, fmt.Sprintf("✅ Uwagi za %s %d usunięte.", service.MonthName(month), year))
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Uwagi za %s %d zapisane.", service.MonthName(month), year))
}
