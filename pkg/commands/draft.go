package commands

import (
	"errors"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/messages"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/richtext"
	"github.com/korjavin/pantrychef/pkg/state"
	"github.com/korjavin/pantrychef/pkg/telegram"
)

const (
	promptName         = "✍️ Let's write a new recipe! What is it called?"
	promptIngredients  = "🥕 Send the ingredients, one per line, as <i>name; quantity</i>. The quantity is optional. Use /done when finished."
	promptInstructions = "📋 Now send the instructions. /bullet starts a list item and /bold adds bold text. Use /done when finished."
	promptImage        = "📷 Send a photo of the dish, or /skip to use the default image."
)

func (h *Handler) newRecipe(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.kitchen.StartDraft()
	h.states.SetState(chatID, state.StateDraftName)
	h.reply(chatID, promptName)
}

func (h *Handler) draftName(chatID int64, text string) {
	if err := h.kitchen.SetDraftName(text); err != nil {
		h.draftLost(chatID, err)
		return
	}
	h.states.SetState(chatID, state.StateDraftIngredients)
	h.reply(chatID, promptIngredients)
}

func (h *Handler) draftIngredients(chatID int64, text string) {
	for _, line := range strings.Split(text, "\n") {
		name, qty := ParseIngredientLine(line)
		if _, err := h.kitchen.AddDraftIngredient(name, qty); err != nil {
			h.draftLost(chatID, err)
			return
		}
	}
	h.states.Touch(chatID)
	h.showDraft(chatID)
}

func (h *Handler) draftInstructions(chatID int64, text string) {
	if err := h.kitchen.AppendDraftInstructions(text); err != nil {
		h.draftLost(chatID, err)
		return
	}
	h.states.Touch(chatID)
	h.showDraft(chatID)
}

func (h *Handler) draftImage(chatID int64, fileID string) {
	if err := h.kitchen.SetDraftImage(telegram.ImageRef(fileID)); err != nil {
		h.draftLost(chatID, err)
		return
	}
	h.saveDraft(chatID)
}

func (h *Handler) bold(message *tgbotapi.Message) {
	h.format(message, richtext.SnippetBold, func(s string) string { return "**" + s + "**" })
}

func (h *Handler) bullet(message *tgbotapi.Message) {
	h.format(message, richtext.SnippetBullet, nil)
}

// format inserts a snippet into the draft instructions. With arguments the
// text is added already formatted.
func (h *Handler) format(message *tgbotapi.Message, kind richtext.Snippet, wrap func(string) string) {
	chatID := message.Chat.ID
	if h.states.GetState(chatID) != state.StateDraftInstructions {
		h.reply(chatID, "Formatting is available while writing the instructions of a /new recipe.")
		return
	}

	args := strings.TrimSpace(message.CommandArguments())
	var err error
	switch {
	case args == "":
		err = h.kitchen.InsertDraftFormat(kind)
	case wrap != nil:
		err = h.kitchen.AppendDraftInstructions(wrap(args))
	default:
		if err = h.kitchen.InsertDraftFormat(kind); err == nil {
			err = h.kitchen.AppendDraftInstructions(args)
		}
	}
	if err != nil {
		h.draftLost(chatID, err)
		return
	}
	h.states.Touch(chatID)
	h.showDraft(chatID)
}

func (h *Handler) done(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	switch h.states.GetState(chatID) {
	case state.StateAddingPantry:
		h.states.ClearState(chatID)
		h.pantry(message)
	case state.StateDraftName:
		h.reply(chatID, "Please send the recipe name first, or /cancel.")
	case state.StateDraftIngredients:
		d, ok := h.kitchen.Draft()
		if !ok {
			h.draftLost(chatID, nil)
			return
		}
		if len(d.Ingredients) == 0 {
			h.reply(chatID, "A recipe needs at least one ingredient. "+promptIngredients)
			return
		}
		h.states.SetState(chatID, state.StateDraftInstructions)
		h.reply(chatID, promptInstructions)
	case state.StateDraftInstructions:
		h.states.SetState(chatID, state.StateDraftImage)
		h.reply(chatID, promptImage)
	case state.StateDraftImage:
		h.saveDraft(chatID)
	default:
		h.reply(chatID, "Nothing to finish. Use /help to see what I can do.")
	}
}

func (h *Handler) skip(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if h.states.GetState(chatID) != state.StateDraftImage {
		h.reply(chatID, "Nothing to skip.")
		return
	}
	h.saveDraft(chatID)
}

func (h *Handler) cancel(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.kitchen.DiscardDraft()
	h.states.ClearState(chatID)
	h.reply(chatID, "👌 Cancelled.")
}

func (h *Handler) saveDraft(chatID int64) {
	r, err := h.kitchen.SaveDraft()
	switch {
	case errors.Is(err, recipes.ErrBlankName):
		h.states.SetState(chatID, state.StateDraftName)
		h.reply(chatID, "The recipe needs a name. "+promptName)
		return
	case errors.Is(err, recipes.ErrNoIngredients):
		h.states.SetState(chatID, state.StateDraftIngredients)
		h.reply(chatID, "A recipe needs at least one ingredient. "+promptIngredients)
		return
	case err != nil:
		h.draftLost(chatID, err)
		return
	}

	h.states.ClearState(chatID)
	h.reply(chatID, fmt.Sprintf("✅ Saved <b>%s</b>!", html.EscapeString(r.Name)))
	h.showRecipe(chatID, r.ID)
}

func (h *Handler) showDraft(chatID int64) {
	d, ok := h.kitchen.Draft()
	if !ok {
		h.draftLost(chatID, nil)
		return
	}
	h.reply(chatID, messages.Draft(d))
}

// draftLost resets a chat whose draft is gone or could not be stored
func (h *Handler) draftLost(chatID int64, err error) {
	h.states.ClearState(chatID)
	if err != nil {
		h.logger.Error("Draft step failed for chat %d: %v", chatID, err)
	}
	h.reply(chatID, messages.Error("continue the recipe")+" Start again with /new.")
}
