package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ewidencja-bot/internal/config"
	"ewidencja-bot/internal/service"
	"ewidencja-bot/pkg/calendar"
	"ewidencja-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// лимит Telegram на длину сообщения
const maxMessageLength = 4096

type Handler struct {
	client   *telegram.Client
	services *service.Services
	config   *config.BotConfig
	now      func() time.Time
}

func NewHandler(client *telegram.Client, services *service.Services, cfg *config.BotConfig) *Handler {
	return &Handler{
		client:   client,
		services: services,
		config:   cfg,
		now:      time.Now,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		// Обработка callback query (для inline кнопок)
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

// handleCallbackQuery обрабатывает подтверждения удаления
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Удаляем клавиатуру
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	switch {
	case strings.HasPrefix(data, confirmDeleteEmployee):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, confirmDeleteEmployee), 10, 32)
		if err != nil {
			h.reply(chatID, "❌ Błąd: nieprawidłowy ID pracownika")
			break
		}
		if err := h.services.Employees.Delete(uint(id)); err != nil {
			logrus.WithError(err).Error("Failed to delete employee via callback")
			h.replyError(chatID, "Błąd usuwania pracownika", err)
			break
		}
		h.reply(chatID, fmt.Sprintf("✅ Pracownik #%d usunięty razem z umowami i wpisami.", id))

	case strings.HasPrefix(data, confirmDeleteContract):
		id, err := strconv.ParseUint(strings.TrimPrefix(data, confirmDeleteContract), 10, 32)
		if err != nil {
			h.reply(chatID, "❌ Błąd: nieprawidłowy ID umowy")
			break
		}
		if err := h.services.Contracts.Delete(uint(id)); err != nil {
			h.replyError(chatID, "Błąd usuwania umowy", err)
			break
		}
		h.reply(chatID, fmt.Sprintf("✅ Umowa #%d usunięta.", id))

	case data == cancelDelete:
		h.reply(chatID, "❌ Usuwanie anulowane.")
	}

	// Отвечаем на callback (убираем "часики" у кнопки)
	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Send(callbackConfig)
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.From != nil {
		logrus.Infof("[%s] %s", message.From.UserName, message.Text)
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "Użyj /help, aby zobaczyć listę poleceń.")
}

// reply отправляет текст, длинные сообщения делятся на части
func (h *Handler) reply(chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageLength) {
		msg := tgbotapi.NewMessage(chatID, part)
		if _, err := h.client.Bot.Send(msg); err != nil {
			logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
			return
		}
	}
}

func (h *Handler) replyError(chatID int64, prefix string, err error) {
	h.reply(chatID, fmt.Sprintf("❌ %s: %s", prefix, errorText(err)))
}

// errorText переводит ошибки сервисов в текст для пользователя
func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "nie znaleziono"
	case errors.Is(err, service.ErrInvalidDepartment):
		return "nieznany dział (obsługa lub nauczyciel)"
	case errors.Is(err, calendar.ErrInvalidArgument):
		return "nieprawidłowa data"
	default:
		return err.Error()
	}
}

func (h *Handler) askConfirmation(chatID int64, text, confirmData string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Tak, usuń", confirmData),
			tgbotapi.NewInlineKeyboardButtonData("❌ Nie, anuluj", cancelDelete),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}
