package integration

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"guestbook/api"
	"guestbook/models"
)

// memRepo is an in-memory stand-in for the Mongo store: inserts prepend so
// reads come back newest first, matching the store's descending sort.
type memRepo struct {
	subs []models.Submission
}

func (m *memRepo) InsertSubmission(ctx context.Context, sub models.Submission) error {
	m.subs = append([]models.Submission{sub}, m.subs...)
	return nil
}

func (m *memRepo) RecentSubmissions(ctx context.Context, limit int64) ([]models.Submission, error) {
	if int64(len(m.subs)) > limit {
		return m.subs[:limit], nil
	}
	return m.subs, nil
}

// Full POST-then-GET flow against the real handler stack, minus MongoDB.
func TestSubmitThenListFlow(t *testing.T) {
	repo := &memRepo{}
	srv := api.NewServer(repo, 50)

	post := func(name, message string) int {
		form := url.Values{"name": {name}, "message": {message}}
		r := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)
		return w.Code
	}

	if code := post("Alice", "first visit"); code != 200 {
		t.Fatalf("first POST failed with %d", code)
	}
	if code := post("Bob <script>", "second & counting"); code != 200 {
		t.Fatalf("second POST failed with %d", code)
	}
	if code := post("", "rejected"); code != 400 {
		t.Fatalf("expected invalid POST to fail with 400, got %d", code)
	}
	if len(repo.subs) != 2 {
		t.Fatalf("expected 2 stored submissions, got %d", len(repo.subs))
	}

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != 200 {
		t.Fatalf("GET failed with %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bob &lt;script&gt;") {
		t.Errorf("expected escaped second author in page")
	}
	if strings.Contains(body, "Bob <script>") {
		t.Errorf("unescaped author leaked into page")
	}
	if !strings.Contains(body, "second &amp; counting") {
		t.Errorf("expected escaped second message in page")
	}
	if strings.Index(body, "second &amp; counting") > strings.Index(body, "first visit") {
		t.Errorf("expected newest submission rendered first")
	}
	if strings.Contains(body, "rejected") {
		t.Errorf("rejected submission must not be stored or rendered")
	}
}
