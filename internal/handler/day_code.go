package handler

import (
	"fmt"

	"ewidencja-bot/pkg/attendance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// setDayCode записывает часы или код отсутствия за день
func (h *Handler) setDayCode(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, `✏️ Wpis dnia

Format polecenia:
/set id data [kod]

Przykłady:
/set 3 2025-05-06 8 → 8 godzin pracy
/set 3 06.05 7.5 → 7,5 godziny
/set 3 06.05 l4 → zwolnienie lekarskie
/set 3 06.05 → usunięcie wpisu`)
		return
	}

	cmd, err := parseSetDay(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.services.Attendance.SetDayCode(cmd); err != nil {
		logrus.WithError(err).WithField("employee_id", cmd.EmployeeID).Warn("Failed to set day code")
		h.replyError(chatID, "Błąd zapisu", err)
		return
	}

	date := fmt.Sprintf("%04d-%02d-%02d", cmd.Year, cmd.Month, cmd.Day)
	if cmd.Code == "" {
		h.reply(chatID, fmt.Sprintf("✅ Wpis pracownika #%d z dnia %s usunięty.", cmd.EmployeeID, date))
		return
	}

	response := fmt.Sprintf("✅ Pracownik #%d, %s: %s", cmd.EmployeeID, date, attendance.NormalizeCode(cmd.Code))

	// предупреждаем о коде, которого нет в справочнике
	catalog, err := h.services.AbsenceTypes.Catalog()
	if err == nil {
		switch attendance.ClassifyCode(cmd.Code, catalog).Kind {
		case attendance.KindTracked:
			response += " (" + catalog.Name(cmd.Code) + ")"
		case attendance.KindUntracked:
			response += "\n⚠️ Nieznany kod, nie będzie liczony w zestawieniu. Zobacz /types"
		}
	}

	h.reply(chatID, response)
}
