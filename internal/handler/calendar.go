package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// setOverride меняет статус дня в календаре отдела
func (h *Handler) setOverride(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, `📅 Zmiana statusu dnia

Format polecenia:
/override dział data kod

Przykłady:
/override nauczyciel 2025-05-02 w → dzień wolny dla nauczycieli
/override obsługa 2025-11-10 P → dzień roboczy dla obsługi`)
		return
	}

	o, err := parseOverride(args, h.now(), true)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	year, month, day := o.Date.Year(), int(o.Date.Month()), o.Date.Day()
	if err := h.services.Calendar.SetOverride(year, month, day, o.Department, o.Code); err != nil {
		logrus.WithError(err).Error("Failed to set calendar override")
		h.replyError(chatID, "Błąd zmiany kalendarza", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ %s, %s: status %s", o.Department, o.Date.Format("2006-01-02"), o.Code))
}

// deleteOverride возвращает дню статус по умолчанию
func (h *Handler) deleteOverride(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	o, err := parseOverride(args, h.now(), false)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /unoverride dział data")
		return
	}

	year, month, day := o.Date.Year(), int(o.Date.Month()), o.Date.Day()
	if err := h.services.Calendar.DeleteOverride(year, month, day, o.Department); err != nil {
		h.replyError(chatID, "Błąd zmiany kalendarza", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ %s, %s: przywrócono status domyślny", o.Department, o.Date.Format("2006-01-02")))
}
