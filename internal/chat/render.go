package chat

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// markdown renders assistant-authored text. Raw HTML passthrough stays
// disabled so a reply can never inject markup; fenced code blocks get
// syntax highlighting.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// RenderTranscript produces the transcript HTML as a pure function of the
// turns and the typing state. User text is escaped verbatim with newlines
// as line breaks; assistant text additionally gets the markdown treatment.
func RenderTranscript(turns []Turn, typing bool) string {
	var sb strings.Builder
	for _, turn := range turns {
		sb.WriteString(renderTurn(turn))
	}
	if typing {
		sb.WriteString(`<div class="chat-msg assistant typing"><span></span><span></span><span></span></div>`)
	}
	return sb.String()
}

func renderTurn(turn Turn) string {
	var body string
	switch turn.Role {
	case RoleAssistant:
		body = renderAssistantText(turn.Text)
	default:
		body = escapeText(turn.Text)
	}
	return fmt.Sprintf(`<div class="chat-msg %s">%s<time>%s</time></div>`,
		html.EscapeString(string(turn.Role)), body, html.EscapeString(turn.Timestamp))
}

func renderAssistantText(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return escapeText(text)
	}
	return buf.String()
}

func escapeText(text string) string {
	escaped := html.EscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
