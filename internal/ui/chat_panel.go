// internal/ui/chat_panel.go
package ui

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-remains/internal/mission"
)

const maxChatInput = 120

var (
	chatBotColor  = color.RGBA{150, 200, 255, 255}
	chatSelfColor = color.RGBA{240, 240, 240, 255}
)

// ChatPanel окно чата лобби: последние сообщения и строка ввода.
type ChatPanel struct {
	X, Y          float32
	Width, Height float32
	Focused       bool
	face          text.Face
	input         []rune
	runes         []rune
}

func NewChatPanel(x, y, width, height float32, face text.Face) *ChatPanel {
	return &ChatPanel{X: x, Y: y, Width: width, Height: height, face: face}
}

// Input текущий набранный текст.
func (c *ChatPanel) Input() string {
	return string(c.input)
}

// Update принимает ввод с клавиатуры, если панель в фокусе. Возвращает
// отправленный по Enter текст.
func (c *ChatPanel) Update() (string, bool) {
	if !c.Focused {
		return "", false
	}
	c.runes = ebiten.AppendInputChars(c.runes[:0])
	for _, r := range c.runes {
		if len(c.input) < maxChatInput {
			c.input = append(c.input, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		msg := strings.TrimSpace(string(c.input))
		c.input = c.input[:0]
		return msg, msg != ""
	}
	return "", false
}

// Draw рисует сообщения снизу вверх, пока они помещаются.
func (c *ChatPanel) Draw(screen *ebiten.Image, messages []mission.ChatMessage) {
	vector.DrawFilledRect(screen, c.X, c.Y, c.Width, c.Height, color.RGBA{20, 20, 30, 230}, false)
	border := color.RGBA{70, 100, 120, 255}
	if c.Focused {
		border = color.RGBA{230, 200, 60, 255}
	}
	vector.StrokeRect(screen, c.X, c.Y, c.Width, c.Height, 2, border, false)

	lh := LineHeight(c.face)
	inputY := float64(c.Y+c.Height) - lh - 6
	prompt := "> " + string(c.input)
	if c.Focused {
		prompt += "_"
	}
	DrawText(screen, prompt, c.face, float64(c.X)+8, inputY, chatSelfColor)

	maxChars := int((c.Width - 16) / 7)
	y := inputY - lh - 4
	for i := len(messages) - 1; i >= 0 && y >= float64(c.Y)+4; i-- {
		m := messages[i]
		clr := chatSelfColor
		if m.Bot {
			clr = chatBotColor
		}
		lines := wrap(m.From+": "+m.Text, maxChars)
		for j := len(lines) - 1; j >= 0 && y >= float64(c.Y)+4; j-- {
			DrawText(screen, lines[j], c.face, float64(c.X)+8, y, clr)
			y -= lh
		}
	}
}

// wrap режет строку по словам на куски не длиннее width символов.
func wrap(s string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return []string{s}
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(line) > 0 && len(line)+1+len(w) > width {
			lines = append(lines, string(line))
			line = line[:0:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
