package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/ceitm/platform/internal/app/system/htmlsanitize"
)

func TestContentDropsScripts(t *testing.T) {
	in := `<p>Hola</p><script>alert("x")</script>`
	out := htmlsanitize.Content(in)
	if strings.Contains(out, "script") {
		t.Errorf("script survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<p>Hola</p>") {
		t.Errorf("benign markup removed: %q", out)
	}
}

func TestContentKeepsVideoIframe(t *testing.T) {
	in := `<iframe src="https://www.youtube.com/embed/abc" allowfullscreen=""></iframe>`
	out := htmlsanitize.Content(in)
	if !strings.Contains(out, "<iframe") {
		t.Errorf("video iframe removed: %q", out)
	}
}

func TestContentDropsEventHandlers(t *testing.T) {
	out := htmlsanitize.Content(`<a href="https://x.mx" onclick="evil()">link</a>`)
	if strings.Contains(out, "onclick") {
		t.Errorf("event handler survived: %q", out)
	}
}

func TestStrict(t *testing.T) {
	if got := htmlsanitize.Strict(`<b>Becas</b> 2026`); got != "Becas 2026" {
		t.Errorf("Strict: got %q", got)
	}
}
