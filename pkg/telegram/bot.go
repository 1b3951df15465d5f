package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/korjavin/pantrychef/pkg/logger"
)

// imagePrefix marks an image reference that points at a Telegram file
const imagePrefix = "tg:"

// Bot represents a Telegram bot instance
type Bot struct {
	api         *tgbotapi.BotAPI
	ownerChatID int64
	logger      *logger.Logger
}

// HandlerFunc is a function that handles a Telegram update
type HandlerFunc func(update tgbotapi.Update)

// CommandHandler is a function that handles a Telegram command
type CommandHandler func(message *tgbotapi.Message)

// CallbackHandler is a function that handles a Telegram callback query
type CallbackHandler func(callback *tgbotapi.CallbackQuery)

// New creates a new Telegram bot instance. A non-zero ownerChatID makes the
// bot ignore every other chat.
func New(token string, ownerChatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	bot := &Bot{
		api:         api,
		ownerChatID: ownerChatID,
		logger:      logger.New("telegram"),
	}

	bot.logger.Info("Telegram bot created: @%s", api.Self.UserName)
	return bot, nil
}

// SetCommands publishes the command menu shown by Telegram clients
func (b *Bot) SetCommands(commands map[string]string, order []string) error {
	list := make([]tgbotapi.BotCommand, 0, len(order))
	for _, name := range order {
		list = append(list, tgbotapi.BotCommand{Command: name, Description: commands[name]})
	}
	_, err := b.api.Request(tgbotapi.NewSetMyCommands(list...))
	return err
}

// Start listens for updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context, commandHandlers map[string]CommandHandler, callbackHandlers map[string]CallbackHandler, defaultHandler HandlerFunc) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Stopping update loop")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update, commandHandlers, callbackHandlers, defaultHandler)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update, commandHandlers map[string]CommandHandler, callbackHandlers map[string]CallbackHandler, defaultHandler HandlerFunc) {
	chatID := chatOf(update)
	if b.ownerChatID != 0 && chatID != b.ownerChatID {
		b.logger.Debug("Ignoring update from chat %d", chatID)
		return
	}
	log := logger.New(fmt.Sprintf("%d", chatID))

	// Handle commands
	if update.Message != nil && update.Message.IsCommand() {
		command := update.Message.Command()
		if handler, ok := commandHandlers[command]; ok {
			log.Info("Handling command: %s from user %s", command, userName(update.Message.From))
			handler(update.Message)
			return
		}
		log.Debug("Unknown command: %s", command)
	}

	// Handle callback queries
	if update.CallbackQuery != nil {
		data := update.CallbackQuery.Data
		for prefix, handler := range callbackHandlers {
			if strings.HasPrefix(data, prefix) {
				log.Info("Handling callback: %s from user %s", data, userName(update.CallbackQuery.From))
				handler(update.CallbackQuery)
				return
			}
		}
		log.Warn("No handler for callback: %s", data)
		return
	}

	// Use default handler for other updates
	if defaultHandler != nil {
		defaultHandler(update)
	}
}

func chatOf(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func userName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}

// SendHTML sends an HTML formatted message, with an inline keyboard when
// keyboard is not nil
func (b *Bot) SendHTML(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	_, err := b.api.Send(msg)
	return err
}

// SendPhoto sends an image given either a URL or a "tg:<file_id>" reference
func (b *Bot) SendPhoto(chatID int64, ref string, caption string) error {
	var file tgbotapi.RequestFileData = tgbotapi.FileURL(ref)
	if id, ok := strings.CutPrefix(ref, imagePrefix); ok {
		file = tgbotapi.FileID(id)
	}
	photo := tgbotapi.NewPhoto(chatID, file)
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(photo)
	return err
}

// FileURL resolves a Telegram file id to a temporary download URL
func (b *Bot) FileURL(fileID string) (string, error) {
	return b.api.GetFileDirectURL(fileID)
}

// AnswerCallbackQuery answers a callback query
func (b *Bot) AnswerCallbackQuery(callbackID string, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)
	_, err := b.api.Request(callback)
	return err
}

// ImageRef builds the stored image reference for a Telegram file id
func ImageRef(fileID string) string {
	return imagePrefix + fileID
}
