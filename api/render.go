package api

import (
	"fmt"
	"strings"
	"time"

	"guestbook/models"
)

const (
	displayTimeFormat    = "Jan 2, 2006 at 3:04 PM"
	timestampPlaceholder = "Unknown date"
)

// EscapeHTML neutralizes user-supplied text for embedding in the page.
// Ampersand is replaced first so the entities inserted by the later
// replacements are not themselves re-escaped.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}

// FormatTimestamp renders the server-side fallback text shown to no-script
// clients. Zero timestamps get a fixed placeholder.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return timestampPlaceholder
	}
	return t.UTC().Format(displayTimeFormat)
}

// MachineTimestamp renders the instant carried on the data-timestamp
// attribute for client-side locale formatting. Empty for zero timestamps so
// the page script leaves the placeholder alone.
func MachineTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Guestbook</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.5rem; }
.entry { border-bottom: 1px solid #ddd; padding: 0.75rem 0; }
.entry-name { font-weight: bold; }
.entry-message { margin: 0.25rem 0; white-space: pre-wrap; }
.timestamp { color: #888; font-size: 0.8rem; }
.empty { color: #888; font-style: italic; }
</style>
</head>
<body>
<h1>Guestbook</h1>
`

const pageFoot = `<script>
document.querySelectorAll('.timestamp').forEach(function (el) {
  var iso = el.getAttribute('data-timestamp');
  if (!iso) return;
  var d = new Date(iso);
  if (!isNaN(d.getTime())) el.textContent = d.toLocaleString();
});
</script>
</body>
</html>
`

// RenderPage builds the full HTML listing. Submissions are emitted in the
// order the store returned them (newest first). Name and message pass
// through EscapeHTML; nothing else on the page is user-controlled.
func RenderPage(subs []models.Submission) string {
	var b strings.Builder
	b.WriteString(pageHead)
	if len(subs) == 0 {
		b.WriteString("<p class=\"empty\">No submissions yet.</p>\n")
	}
	for _, sub := range subs {
		fmt.Fprintf(&b, "<div class=\"entry\">\n")
		fmt.Fprintf(&b, "<div class=\"entry-name\">%s</div>\n", EscapeHTML(sub.Name))
		fmt.Fprintf(&b, "<div class=\"entry-message\">%s</div>\n", EscapeHTML(sub.Message))
		fmt.Fprintf(&b, "<div class=\"timestamp\" data-timestamp=\"%s\">%s</div>\n",
			MachineTimestamp(sub.Timestamp), FormatTimestamp(sub.Timestamp))
		fmt.Fprintf(&b, "</div>\n")
	}
	b.WriteString(pageFoot)
	return b.String()
}
