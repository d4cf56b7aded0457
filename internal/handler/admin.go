package handler

import (
	"fmt"
	"strings"

	"ewidencja-bot/internal/models"
	"ewidencja-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showEmployees показывает всех сотрудников или сотрудников одного отдела
func (h *Handler) showEmployees(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	department := ""
	if args = strings.TrimSpace(args); args != "" {
		dept, err := parseDepartment(args)
		if err != nil {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		department = dept
	}

	employees, err := h.services.Employees.List(department)
	if err != nil {
		logrus.WithError(err).Error("Failed to list employees")
		h.replyError(chatID, "Błąd pobierania pracowników", err)
		return
	}

	h.reply(chatID, service.FormatEmployees(employees))
}

func (h *Handler) addEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, `👤 Nowy pracownik

Format polecenia:
/addemployee imię nazwisko; dział; [norma]; [stanowisko]; [początek umowy]

Przykład:
/addemployee Anna Nowak; obsługa; 8; sprzątaczka; 2025-01-01
→ pracownik z umową bezterminową od 1 stycznia 2025

Bez normy przyjmowana jest norma domyślna.`)
		return
	}

	cmd, err := parseAddEmployee(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	employee, err := h.services.Employees.Create(cmd)
	if err != nil {
		h.replyError(chatID, "Błąd dodawania pracownika", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Dodano pracownika #%d %s (%s)", employee.ID, employee.FullName, employee.Department))
}

func (h *Handler) editEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, cmd, err := parseEditEmployee(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /editemployee id pole=wartość; pole=wartość")
		return
	}

	employee, err := h.services.Employees.Update(id, cmd)
	if err != nil {
		h.replyError(chatID, "Błąd zmiany danych", err)
		return
	}

	h.reply(chatID, "✅ Zapisano:\n"+service.FormatEmployees([]models.Employee{*employee}))
}

func (h *Handler) deleteEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := parseID(strings.TrimSpace(args))
	if err != nil {
		h.reply(chatID, "❌ Format: /delemployee id")
		return
	}

	employee, err := h.services.Employees.Get(id)
	if err != nil {
		h.replyError(chatID, fmt.Sprintf("Pracownik #%d", id), err)
		return
	}

	h.askConfirmation(chatID,
		fmt.Sprintf("⚠️ Usunąć pracownika %s razem z umowami, wpisami i uwagami?\nTej operacji nie można cofnąć.", employee.FullName),
		fmt.Sprintf("%s%d", confirmDeleteEmployee, id))
}

func (h *Handler) showContracts(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := parseID(strings.TrimSpace(args))
	if err != nil {
		h.reply(chatID, "❌ Format: /contracts id")
		return
	}

	employee, err := h.services.Employees.Get(id)
	if err != nil {
		h.replyError(chatID, fmt.Sprintf("Pracownik #%d", id), err)
		return
	}

	list, err := h.services.Contracts.List(id)
	if err != nil {
		h.replyError(chatID, "Błąd pobierania umów", err)
		return
	}

	h.reply(chatID, service.FormatContracts(employee, list))
}

func (h *Handler) addContract(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	employeeID, cmd, err := parseContract(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nPrzykład: /addcontract 3 2025-01-01 2025-06-30 6")
		return
	}
	cmd.EmployeeID = employeeID

	contract, err := h.services.Contracts.Create(cmd)
	if err != nil {
		h.replyError(chatID, "Błąd dodawania umowy", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Dodano umowę #%d od %s, norma %v h", contract.ID, contract.StartDate, contract.DailyNorm))
}

func (h *Handler) editContract(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, cmd, err := parseContract(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\nFormat: /editcontract id_umowy początek [koniec] norma")
		return
	}

	contract, err := h.services.Contracts.Update(id, cmd)
	if err != nil {
		h.replyError(chatID, "Błąd zmiany umowy", err)
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Umowa #%d zapisana.", contract.ID))
}

func (h *Handler) deleteContract(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := parseID(strings.TrimSpace(args))
	if err != nil {
		h.reply(chatID, "❌ Format: /delcontract id_umowy")
		return
	}

	h.askConfirmation(chatID,
		fmt.Sprintf("⚠️ Usunąć umowę #%d?", id),
		fmt.Sprintf("%s%d", confirmDeleteContract, id))
}

// settings показывает настройки или меняет одну из них
func (h *Handler) settings(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) != "" {
		key, value, err := parseSetting(args)
		if err != nil {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		if err := h.services.Settings.Set(key, value); err != nil {
			h.replyError(chatID, "Błąd zapisu ustawień", err)
			return
		}
	}

	values, err := h.services.Settings.GetAll()
	if err != nil {
		h.replyError(chatID, "Błąd pobierania ustawień", err)
		return
	}

	h.reply(chatID, service.FormatSettings(values))
}
