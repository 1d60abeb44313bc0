package notify

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewEmailNotifier_DisabledWithoutKey(t *testing.T) {
	if n := NewEmailNotifier("", "coach@moneyengine.co", "tash@moneyengine.co", zerolog.Nop()); n != nil {
		t.Fatalf("missing api key should disable email")
	}
}

func TestSummaryHTML(t *testing.T) {
	got := summaryHTML("First paragraph.\n\nSecond line one\nline two & <b>escaped</b>")
	if !strings.Contains(got, "<p>First paragraph.</p>") {
		t.Fatalf("missing first paragraph: %s", got)
	}
	if !strings.Contains(got, "line one<br>line two") {
		t.Fatalf("newlines should become breaks: %s", got)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("user content must be escaped: %s", got)
	}
}
