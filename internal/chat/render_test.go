package chat

import (
	"strings"
	"testing"
)

func TestRenderEscapesUserText(t *testing.T) {
	out := RenderTranscript([]Turn{
		{Role: RoleUser, Text: "<script>alert(1)</script>\nsecond line", Timestamp: "3:04 PM"},
	}, false)

	if strings.Contains(out, "<script>") {
		t.Errorf("user markup not escaped: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped markup: %q", out)
	}
	if !strings.Contains(out, "<br>") {
		t.Errorf("newline should become a line break: %q", out)
	}
}

func TestRenderAssistantMarkdown(t *testing.T) {
	out := RenderTranscript([]Turn{
		{Role: RoleAssistant, Text: "Spend **less** on `coffee`.", Timestamp: "3:05 PM"},
	}, false)

	if !strings.Contains(out, "<strong>less</strong>") {
		t.Errorf("bold not rendered: %q", out)
	}
	if !strings.Contains(out, "<code>coffee</code>") {
		t.Errorf("inline code not rendered: %q", out)
	}
}

func TestRenderAssistantRawHTMLBlocked(t *testing.T) {
	out := RenderTranscript([]Turn{
		{Role: RoleAssistant, Text: `<img src=x onerror=alert(1)>`, Timestamp: "3:05 PM"},
	}, false)

	if strings.Contains(out, "<img") {
		t.Errorf("raw HTML must not pass through assistant markdown: %q", out)
	}
}

func TestRenderTypingIndicator(t *testing.T) {
	if out := RenderTranscript(nil, true); !strings.Contains(out, "typing") {
		t.Errorf("typing indicator missing: %q", out)
	}
	if out := RenderTranscript(nil, false); out != "" {
		t.Errorf("empty idle transcript should render nothing: %q", out)
	}
}
