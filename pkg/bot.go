package pkg

import (
	"strconv"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/Mishana2007/podarok/logic"
	"github.com/Mishana2007/podarok/pkg/logging"
)

const (
	startGreeting = "Привет! 👋\nЯ бот для получения подарков. Нажми на кнопку ниже, чтобы открыть приложение:"
	startFailed   = "Произошла ошибка. Пожалуйста, попробуйте позже."
	openGiftsText = "🎁 Открыть подарки"
)

// BotClient is the Telegram front end. It registers users on /start and
// hands them the web-app button; gift issuance itself goes through the
// HTTP API called from inside the web app.
type BotClient struct {
	bot       *tele.Bot
	userLogic *logic.UserLogic
	webAppURL string
}

func NewBotClient(token, webAppURL string, userLogic *logic.UserLogic) (*BotClient, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	c := &BotClient{
		bot:       bot,
		userLogic: userLogic,
		webAppURL: webAppURL,
	}
	bot.Handle("/start", c.handleStart)
	return c, nil
}

// Start runs the long-polling loop. It blocks until Stop is called.
func (c *BotClient) Start() {
	c.bot.Start()
}

// Stop terminates the polling loop.
func (c *BotClient) Stop() {
	c.bot.Stop()
}

func (c *BotClient) handleStart(ctx tele.Context) error {
	telegramID := strconv.FormatInt(ctx.Chat().ID, 10)
	username := ctx.Sender().Username

	if _, err := c.userLogic.RegisterIfAbsent(telegramID, username); err != nil {
		logging.Error("Failed to register user",
			zap.String("telegram_id", telegramID), zap.Error(err))
		return ctx.Send(startFailed)
	}

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.WebApp(openGiftsText, &tele.WebApp{URL: c.webAppURL}),
	))
	return ctx.Send(startGreeting, menu)
}
