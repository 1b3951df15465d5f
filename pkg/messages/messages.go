package messages

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/models"
	"github.com/korjavin/pantrychef/pkg/recipes"
	"github.com/korjavin/pantrychef/pkg/richtext"
)

// MaxListed caps the number of recipes in a list reply
const MaxListed = 20

// Callback data prefixes used by the inline keyboards
const (
	CallbackRemove = "remove:"
	CallbackRecipe = "recipe:"
	CallbackMode   = "mode:"
)

// Welcome returns the greeting and command overview
func Welcome(llmEnabled bool) string {
	var b strings.Builder
	b.WriteString("👋 <b>Welcome to PantryChef!</b>\n")
	b.WriteString("Tell me what is in your pantry and I'll show which recipes you can cook.\n\n")
	b.WriteString("🧺 /pantry - show the pantry\n")
	b.WriteString("➕ /add <i>items</i> - add items, separated by commas\n")
	b.WriteString("➖ /remove <i>item</i> - remove an item\n")
	b.WriteString("🧹 /clear_pantry - empty the pantry\n")
	b.WriteString("📖 /recipes <i>[query]</i> - ranked recipes\n")
	b.WriteString("🔤 /by_name, 🥕 /by_ingredient - search mode\n")
	b.WriteString("🍳 /recipe <i>id</i> - recipe details\n")
	b.WriteString("🛒 /missing <i>id</i> - shopping list\n")
	b.WriteString("✍️ /new - write a new recipe\n")
	if llmEnabled {
		b.WriteString("\n📷 After /add you can also send a photo of your groceries.")
	}
	return b.String()
}

// Error returns a generic failure reply for the given action
func Error(action string) string {
	return fmt.Sprintf("😢 Sorry, I couldn't %s. Please try again later.", html.EscapeString(action))
}

// Pantry lists the pantry items
func Pantry(items []string) string {
	if len(items) == 0 {
		return "🧺 Your pantry is empty! Add items with /add."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🧺 <b>Your pantry</b> (%d):\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "• %s\n", html.EscapeString(item))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PantryKeyboard has one remove button per item. Items too long for
// Telegram's 64 byte callback data get no button.
func PantryKeyboard(items []string) *tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, item := range items {
		data := CallbackRemove + item
		if len(data) > 64 {
			continue
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("❌ "+item, data))
	}
	if len(buttons) == 0 {
		return nil
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		rows = append(rows, buttons[i:min(i+2, len(buttons))])
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// Added confirms the items that were added
func Added(added []string, skipped int) string {
	if len(added) == 0 {
		return "👌 Nothing new to add, those items are already in your pantry."
	}
	msg := fmt.Sprintf("✅ Added %d item(s) to your pantry: %s", len(added), html.EscapeString(strings.Join(added, ", ")))
	if skipped > 0 {
		msg += fmt.Sprintf("\n(%d already there)", skipped)
	}
	return msg
}

// NotInPantry answers a failed removal, with fuzzy hints when available
func NotInPantry(item string, hints []string) string {
	msg := fmt.Sprintf("🤔 <i>%s</i> is not in your pantry.", html.EscapeString(item))
	if len(hints) > 0 {
		msg += " Did you mean: " + html.EscapeString(strings.Join(hints, ", ")) + "?"
	}
	return msg
}

// RecipeList renders a ranked recipe list
func RecipeList(ranked []models.RankedRecipe, query string, mode models.SearchMode) string {
	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "🔎 Recipes matching <i>%s</i> (%s):\n", html.EscapeString(query), mode.Label())
	} else {
		b.WriteString("📖 <b>Your recipes</b>, best match first:\n")
	}
	if len(ranked) == 0 {
		b.WriteString("No recipes found.")
		return b.String()
	}
	for i, r := range ranked {
		if i == MaxListed {
			fmt.Fprintf(&b, "… and %d more", len(ranked)-MaxListed)
			break
		}
		fmt.Fprintf(&b, "%s %s - %s\n", statusIcon(r.Status), html.EscapeString(r.Recipe.Name), Percentage(r.Status.MatchPercentage))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RecipeListKeyboard has one button per listed recipe plus a mode toggle
func RecipeListKeyboard(ranked []models.RankedRecipe, mode models.SearchMode) *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(ranked)+1)
	for i, r := range ranked {
		if i == MaxListed {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(r.Recipe.Name, CallbackRecipe+strconv.FormatInt(r.Recipe.ID, 10)),
		))
	}
	other := models.SearchByIngredient
	if mode == models.SearchByIngredient {
		other = models.SearchByName
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Search "+other.Label(), CallbackMode+string(other)),
	))
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// RecipeDetail renders a recipe with have/missing marks and formatted
// instructions
func RecipeDetail(r models.RankedRecipe) string {
	missing := make(map[string]bool, len(r.Status.Missing))
	for _, ing := range r.Status.Missing {
		missing[ing.Name] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ <b>%s</b>\n", html.EscapeString(r.Recipe.Name))
	if r.Recipe.Category != "" {
		fmt.Fprintf(&b, "🏷️ %s\n", html.EscapeString(r.Recipe.Category))
	}
	fmt.Fprintf(&b, "%s %s of the ingredients available\n\n", statusIcon(r.Status), Percentage(r.Status.MatchPercentage))

	b.WriteString("<b>Ingredients</b>\n")
	for _, ing := range r.Recipe.Ingredients {
		mark := "✅"
		if missing[ing.Name] {
			mark = "❌"
		}
		fmt.Fprintf(&b, "%s %s", mark, html.EscapeString(ing.Name))
		if ing.Qty != "" {
			fmt.Fprintf(&b, " (%s)", html.EscapeString(ing.Qty))
		}
		b.WriteString("\n")
	}

	if strings.TrimSpace(r.Recipe.Instructions) != "" {
		b.WriteString("\n<b>Instructions</b>\n")
		b.WriteString(richtext.HTML(r.Recipe.Instructions))
	}
	fmt.Fprintf(&b, "\n\n🛒 /missing %d", r.Recipe.ID)
	return b.String()
}

// ShoppingList lists what is still needed for a recipe
func ShoppingList(name string, missing []models.Ingredient) string {
	if len(missing) == 0 {
		return fmt.Sprintf("🎉 You have everything for <b>%s</b>!", html.EscapeString(name))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>To cook %s you still need:</b>\n", html.EscapeString(name))
	for _, ing := range missing {
		fmt.Fprintf(&b, "• %s", html.EscapeString(ing.Name))
		if ing.Qty != "" {
			fmt.Fprintf(&b, " (%s)", html.EscapeString(ing.Qty))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RecipeHints answers an unknown recipe id or name
func RecipeHints(hints []models.Recipe) string {
	if len(hints) == 0 {
		return "🤔 I couldn't find that recipe. Use /recipes to see them all."
	}
	var b strings.Builder
	b.WriteString("🤔 I couldn't find that recipe. Did you mean:\n")
	for _, r := range hints {
		fmt.Fprintf(&b, "• %s - /recipe %d\n", html.EscapeString(r.Name), r.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Draft summarizes the recipe being written
func Draft(d recipes.Draft) string {
	var b strings.Builder
	name := d.Name
	if strings.TrimSpace(name) == "" {
		name = "(no name)"
	}
	fmt.Fprintf(&b, "📝 <b>%s</b>\n", html.EscapeString(name))
	if len(d.Ingredients) == 0 {
		b.WriteString("No ingredients yet.\n")
	}
	for _, ing := range d.Ingredients {
		fmt.Fprintf(&b, "• %s (%s)\n", html.EscapeString(ing.Name), html.EscapeString(ing.Qty))
	}
	if strings.TrimSpace(d.Instructions) != "" {
		b.WriteString("\n")
		b.WriteString(richtext.HTML(d.Instructions))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Percentage formats a match percentage rounded to a whole number
func Percentage(p float64) string {
	return strconv.FormatFloat(math.Round(p), 'f', -1, 64) + "%"
}

func statusIcon(s models.RecipeStatus) string {
	switch {
	case s.CanCook:
		return "🟢"
	case s.MatchPercentage >= 50:
		return "🟡"
	default:
		return "🔴"
	}
}
