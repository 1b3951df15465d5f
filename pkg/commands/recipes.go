package commands

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/kitchen"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/models"
)

func (h *Handler) recipes(message *tgbotapi.Message) {
	h.search(message.Chat.ID, strings.TrimSpace(message.CommandArguments()))
}

func (h *Handler) search(chatID int64, query string) {
	mode := h.states.SearchMode(chatID)
	ranked := h.kitchen.View(query, mode)
	if len(ranked) == 0 && query != "" && mode == models.SearchByName {
		h.reply(chatID, messages.RecipeHints(h.kitchen.SuggestRecipes(query, hintCount)))
		return
	}
	h.replyWithKeyboard(chatID, messages.RecipeList(ranked, query, mode), messages.RecipeListKeyboard(ranked, mode))
}

func (h *Handler) byName(message *tgbotapi.Message) {
	h.setMode(message.Chat.ID, models.SearchByName)
}

func (h *Handler) byIngredient(message *tgbotapi.Message) {
	h.setMode(message.Chat.ID, models.SearchByIngredient)
}

func (h *Handler) setMode(chatID int64, mode models.SearchMode) {
	h.states.SetSearchMode(chatID, mode)
	h.reply(chatID, fmt.Sprintf("🔎 Searching recipes %s. Send a word or use /recipes <i>query</i>.", mode.Label()))
}

func (h *Handler) modeCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	mode := models.ParseSearchMode(strings.TrimPrefix(callback.Data, messages.CallbackMode))
	h.states.SetSearchMode(chatID, mode)
	h.answer(callback, "Searching "+mode.Label())
	h.search(chatID, "")
}

func (h *Handler) recipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	arg := strings.TrimSpace(message.CommandArguments())
	if arg == "" {
		h.reply(chatID, "Usage: /recipe <i>id</i>. Use /recipes to see them all.")
		return
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		h.reply(chatID, messages.RecipeHints(h.kitchen.SuggestRecipes(arg, hintCount)))
		return
	}
	h.showRecipe(chatID, id)
}

func (h *Handler) recipeCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(callback.Data, messages.CallbackRecipe), 10, 64)
	if err != nil {
		h.logger.Warn("Bad recipe callback %q: %v", callback.Data, err)
		h.answer(callback, "Unknown recipe")
		return
	}
	h.answer(callback, "")
	h.showRecipe(callback.Message.Chat.ID, id)
}

func (h *Handler) showRecipe(chatID int64, id int64) {
	r, err := h.kitchen.Recipe(id)
	if errors.Is(err, kitchen.ErrRecipeNotFound) {
		h.reply(chatID, messages.RecipeHints(nil))
		return
	}
	if err != nil {
		h.logger.Error("Failed to load recipe %d: %v", id, err)
		h.reply(chatID, messages.Error("load the recipe"))
		return
	}

	if r.Recipe.Image != "" {
		caption := fmt.Sprintf("<b>%s</b>", html.EscapeString(r.Recipe.Name))
		if err := h.sender.SendPhoto(chatID, r.Recipe.Image, caption); err != nil {
			h.logger.Warn("Failed to send image for recipe %d: %v", id, err)
		}
	}
	h.reply(chatID, messages.RecipeDetail(r))
}

func (h *Handler) missing(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	id, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		h.reply(chatID, "Usage: /missing <i>id</i>")
		return
	}

	list, err := h.kitchen.ShoppingList(id)
	if errors.Is(err, kitchen.ErrRecipeNotFound) {
		h.reply(chatID, messages.RecipeHints(nil))
		return
	}
	if err != nil {
		h.logger.Error("Failed to build shopping list for %d: %v", id, err)
		h.reply(chatID, messages.Error("build the shopping list"))
		return
	}
	name := strconv.FormatInt(id, 10)
	if r, err := h.kitchen.Recipe(id); err == nil {
		name = r.Recipe.Name
	}
	h.reply(chatID, messages.ShoppingList(name, list))
}
