package handler

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showAbsenceTypes(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	types, err := h.services.AbsenceTypes.List()
	if err != nil {
		logrus.WithError(err).Error("Failed to list absence types")
		h.replyError(chatID, "Błąd pobierania typów", err)
		return
	}

	h.reply(chatID, service.FormatTypes(types))
}

func (h *Handler) addAbsenceType(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	cmd, err := parseAbsenceType(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nPrzykład: /addtype dy #FFC000 Dyżur")
		return
	}

	t, err := h.services.AbsenceTypes.Create(cmd)
	if err != nil {
		h.replyError(chatID, "Błąd dodawania typu", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Dodano typ %s - %s", t.Code, t.Name))
}

func (h *Handler) editAbsenceType(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	idStr, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	id, err := parseID(idStr)
	if err != nil {
		h.reply(chatID, "❌ Format: /edittype id kod kolor nazwa")
		return
	}
	cmd, err := parseAbsenceType(rest)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if err := h.services.AbsenceTypes.Update(id, cmd); err != nil {
		h.replyError(chatID, "Błąd zmiany typu", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Typ #%d zapisany.", id))
}

// deleteAbsenceType удаляет тип по коду; записи дней с этим кодом остаются
func (h *Handler) deleteAbsenceType(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	code := strings.TrimSpace(args)
	if code == "" {
		h.reply(chatID, "❌ Format: /deltype kod")
		return
	}

	if err := h.services.AbsenceTypes.DeleteByCode(code); err != nil {
		h.replyError(chatID, "Błąd usuwania typu", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Typ %s usunięty. Istniejące wpisy z tym kodem nie będą liczone.", code))
}

func (h *Handler) orderAbsenceTypes(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	codes := strings.Fields(args)
	if len(codes) == 0 {
		h.reply(chatID, "❌ Format: /ordertypes kod kod ...\nPominięte typy zostaną na końcu.")
		return
	}

	if err := h.services.AbsenceTypes.Reorder(codes); err != nil {
		h.replyError(chatID, "Błąd zmiany kolejności", err)
		return
	}

	h.showAbsenceTypes(message)
}
