package commands

import (
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/textnorm"
)

const hintCount = 3

func (h *Handler) pantry(message *tgbotapi.Message) {
	items := h.kitchen.Pantry()
	h.replyWithKeyboard(message.Chat.ID, messages.Pantry(items), messages.PantryKeyboard(items))
}

func (h *Handler) add(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())
	if args != "" {
		h.addItems(chatID, args)
		return
	}

	h.states.SetState(chatID, state.StateAddingPantry)
	prompt := "🧺 Send me the items you have, separated by commas or one per line."
	if h.parser != nil {
		prompt += " You can also send a photo."
	}
	h.reply(chatID, prompt+" Use /done when finished.")
}

// extract turns a message into item names, preferring the LLM when it is
// configured and falling back to plain splitting when it fails
func (h *Handler) extract(text string) []string {
	if h.parser == nil {
		return SplitItems(text)
	}
	items, err := h.parser.ParseIngredientsFromText(h.ctx, text)
	if err != nil {
		h.logger.Warn("LLM parsing failed, splitting instead: %v", err)
		return SplitItems(text)
	}
	return items
}

func (h *Handler) addItems(chatID int64, text string) {
	items := h.extract(text)
	if len(items) == 0 {
		h.reply(chatID, "I couldn't find any items in your message. Please try again.")
		return
	}
	h.storeItems(chatID, items)
}

func (h *Handler) storeItems(chatID int64, items []string) {
	added, err := h.kitchen.AddPantryItems(items)
	if err != nil {
		h.logger.Error("Failed to add pantry items: %v", err)
		h.reply(chatID, messages.Error("update your pantry"))
		return
	}
	h.reply(chatID, messages.Added(added, len(items)-len(added)))
}

func (h *Handler) remove(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	item := strings.TrimSpace(message.CommandArguments())
	if item == "" {
		items := h.kitchen.Pantry()
		if len(items) == 0 {
			h.reply(chatID, messages.Pantry(items))
			return
		}
		h.replyWithKeyboard(chatID, "Which item should I remove?", messages.PantryKeyboard(items))
		return
	}
	h.removeItem(chatID, item)
}

func (h *Handler) removeItem(chatID int64, item string) bool {
	removed, err := h.kitchen.RemovePantryItem(item)
	if err != nil {
		h.logger.Error("Failed to remove %q: %v", item, err)
		h.reply(chatID, messages.Error("update your pantry"))
		return false
	}
	if !removed {
		h.reply(chatID, messages.NotInPantry(item, h.kitchen.SuggestPantryItems(item, hintCount)))
		return false
	}
	h.reply(chatID, fmt.Sprintf("🗑️ Removed <i>%s</i> from your pantry.", html.EscapeString(textnorm.Normalize(item))))
	return true
}

func (h *Handler) removeCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	item := strings.TrimPrefix(callback.Data, messages.CallbackRemove)

	if h.removeItem(chatID, item) {
		h.answer(callback, "Removed")
		items := h.kitchen.Pantry()
		h.replyWithKeyboard(chatID, messages.Pantry(items), messages.PantryKeyboard(items))
		return
	}
	h.answer(callback, "")
}

func (h *Handler) clearPantry(message *tgbotapi.Message) {
	if err := h.kitchen.ClearPantry(); err != nil {
		h.logger.Error("Failed to clear pantry: %v", err)
		h.reply(message.Chat.ID, messages.Error("clear your pantry"))
		return
	}
	h.reply(message.Chat.ID, "🧹 Pantry cleared! Add items with /add.")
}

func (h *Handler) photo(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	// Telegram lists sizes smallest first
	fileID := message.Photo[len(message.Photo)-1].FileID

	switch h.states.GetState(chatID) {
	case state.StateDraftImage:
		h.draftImage(chatID, fileID)
	case state.StateAddingPantry:
		h.states.Touch(chatID)
		h.importPhoto(chatID, fileID)
	default:
		h.reply(chatID, "📷 To import groceries from a photo, use /add first.")
	}
}

func (h *Handler) importPhoto(chatID int64, fileID string) {
	if h.parser == nil {
		h.reply(chatID, "📷 Photo import is not enabled. Please type the items instead.")
		return
	}

	url, err := h.sender.FileURL(fileID)
	if err != nil {
		h.logger.Error("Failed to resolve photo %s: %v", fileID, err)
		h.reply(chatID, messages.Error("download the photo"))
		return
	}

	h.reply(chatID, "🔍 Looking at your photo...")
	items, err := h.parser.ExtractIngredientsFromPhoto(h.ctx, url)
	if err != nil {
		h.logger.Error("Failed to extract items from photo: %v", err)
		h.reply(chatID, messages.Error("read the photo"))
		return
	}
	if len(items) == 0 {
		h.reply(chatID, "I couldn't recognize any groceries in that photo.")
		return
	}
	h.storeItems(chatID, items)
}
