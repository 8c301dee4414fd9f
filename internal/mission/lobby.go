package mission

import (
	"strings"

	"nova-remains/internal/config"
	"nova-remains/internal/event"
	"nova-remains/internal/timer"
)

const (
	lobbyTimerOwner = "lobby"
	maxChatHistory  = 50
)

var botReplies = []string{
	"Hi there!",
	"Anyone up for the Orc Camp?",
	"Need a healer, lol",
	"gg",
	"Looking for a party, lvl 3 archer.",
	"That skeleton drop rate is brutal.",
	"brb",
}

var greetings = []string{"hi", "hello", "hey", "yo"}

// ChatMessage сообщение в чате лобби.
type ChatMessage struct {
	From string
	Text string
	At   float64 // Время планировщика в момент отправки
	Bot  bool
}

// Lobby локальный чат с ботами, которые отвечают с задержкой.
type Lobby struct {
	messages        []ChatMessage
	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher
	rng             Random
}

func NewLobby(scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, rng Random) *Lobby {
	return &Lobby{scheduler: scheduler, eventDispatcher: eventDispatcher, rng: rng}
}

// Send публикует сообщение игрока и планирует ответ бота.
func (l *Lobby) Send(from, text string) (ChatMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ChatMessage{}, false
	}
	msg := l.post(from, text, false)

	delay := config.ChatReplyMinDelay + l.rng.Float64()*(config.ChatReplyMaxDelay-config.ChatReplyMinDelay)
	bot := botNames[l.rng.Intn(len(botNames))]
	reply := l.replyTo(text, from)
	l.scheduler.After(lobbyTimerOwner, delay, func() {
		l.post(bot, reply, true)
	})
	return msg, true
}

func (l *Lobby) replyTo(text, from string) string {
	lower := strings.ToLower(text)
	for _, g := range greetings {
		if strings.HasPrefix(lower, g) {
			return "Hey " + from + "!"
		}
	}
	return botReplies[l.rng.Intn(len(botReplies))]
}

func (l *Lobby) post(from, text string, bot bool) ChatMessage {
	msg := ChatMessage{From: from, Text: text, At: l.scheduler.Now(), Bot: bot}
	l.messages = append(l.messages, msg)
	if len(l.messages) > maxChatHistory {
		l.messages = l.messages[len(l.messages)-maxChatHistory:]
	}
	if l.eventDispatcher != nil {
		l.eventDispatcher.Dispatch(event.Event{Type: event.ChatMessage, Data: msg})
	}
	return msg
}

// Messages копия истории чата, старые сообщения первыми.
func (l *Lobby) Messages() []ChatMessage {
	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// PendingReplies сколько ответов ботов ещё ожидается.
func (l *Lobby) PendingReplies() int {
	return l.scheduler.PendingFor(lobbyTimerOwner)
}

// Close отменяет все ожидающие ответы.
func (l *Lobby) Close() {
	l.scheduler.CancelOwner(lobbyTimerOwner)
}
