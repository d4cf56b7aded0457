package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// данные inline кнопок подтверждения
const (
	confirmDeleteEmployee = "confirm_delete_employee_"
	confirmDeleteContract = "confirm_delete_contract_"
	cancelDelete          = "cancel_delete"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)

	// Ewidencja
	case "month", "miesiac":
		h.showMonthOverview(message, args)
	case "export":
		h.exportMonth(message, args)
	case "card", "karta":
		h.showEmployeeCard(message, args)
	case "set":
		h.setDayCode(message, args)
	case "quarter", "kw":
		h.showQuarterly(message, args)
	case "note":
		h.saveNote(message, args)
	case "profile":
		h.showProfile(message, args)

	// Kalendarz
	case "override":
		h.setOverride(message, args)
	case "unoverride":
		h.deleteOverride(message, args)

	// Pracownicy i umowy
	case "employees":
		h.showEmployees(message, args)
	case "addemployee":
		h.addEmployee(message, args)
	case "editemployee":
		h.editEmployee(message, args)
	case "delemployee":
		h.deleteEmployee(message, args)
	case "contracts":
		h.showContracts(message, args)
	case "addcontract":
		h.addContract(message, args)
	case "editcontract":
		h.editContract(message, args)
	case "delcontract":
		h.deleteContract(message, args)

	// Typy nieobecności
	case "types":
		h.showAbsenceTypes(message)
	case "addtype":
		h.addAbsenceType(message, args)
	case "edittype":
		h.editAbsenceType(message, args)
	case "deltype":
		h.deleteAbsenceType(message, args)
	case "ordertypes":
		h.orderAbsenceTypes(message, args)

	case "settings":
		h.settings(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Nieznane polecenie. Użyj /help, aby zobaczyć listę poleceń.")
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	text := `👋 Ewidencja czasu pracy

Bot prowadzi miesięczną ewidencję obecności pracowników:
godziny pracy, nieobecności, kalendarz dni roboczych i normy z umów.

Zacznij od /employees, a pełną listę poleceń znajdziesz w /help.`

	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📋 Dostępne polecenia:

📊 Ewidencja:
/month [rok miesiąc] [dział] - zestawienie miesiąca
    Przykład: /month 2025 5 nauczyciel
/export [rok miesiąc] [dział] - zestawienie miesiąca w pliku xlsx
/card id [rok miesiąc] - karta pracy pracownika
/set id data [kod] - wpis dnia (godziny lub kod nieobecności, bez kodu usuwa)
    Przykład: /set 3 2025-05-06 8 lub /set 3 06.05 l4
/quarter [rok] [dział] - zestawienie kwartalne
/note id rok miesiąc [tekst] - uwagi do miesiąca (bez tekstu usuwa)
/profile id - historia pracownika

📅 Kalendarz:
/override dział data kod - zmiana statusu dnia dla działu
/unoverride dział data - przywrócenie statusu domyślnego

👥 Pracownicy:
/employees [dział] - lista pracowników
/addemployee imię nazwisko; dział; [norma]; [stanowisko]; [początek umowy]
/editemployee id pole=wartość; ... (nazwisko, stanowisko, nr, dział, norma)
/delemployee id - usunięcie pracownika
/contracts id - umowy pracownika
/addcontract id początek [koniec] norma
/editcontract id_umowy początek [koniec] norma
/delcontract id_umowy - usunięcie umowy

🏷 Typy nieobecności:
/types - lista typów
/addtype kod kolor nazwa
/edittype id kod kolor nazwa
/deltype kod - usunięcie typu
/ordertypes kod kod ... - nowa kolejność

⚙️ /settings [klucz=wartość] - ustawienia firmy

Działy: obsługa (o), nauczyciel (n). Daty: RRRR-MM-DD, DD.MM.RRRR lub DD.MM.`

	h.reply(message.Chat.ID, text)
}
