package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Prometheus-style counters (uint64 via atomic)
var (
	submissionsAccepted atomic.Uint64
	validationFailures  atomic.Uint64
	listRenders         atomic.Uint64
	storeErrors         atomic.Uint64
	wsConnections       atomic.Int64 // gauge semantics
)

// Increment helpers
func IncSubmissionAccepted() { submissionsAccepted.Add(1) }
func IncValidationFailure()  { validationFailures.Add(1) }
func IncListRender()         { listRenders.Add(1) }
func IncStoreError()         { storeErrors.Add(1) }
func IncWSConnections()      { wsConnections.Add(1) }
func DecWSConnections()      { wsConnections.Add(-1) }

// Handler exposes metrics in a minimal Prometheus exposition format.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprintf(w, "# HELP guestbook_submissions_accepted_total Submissions validated and persisted\n")
	fmt.Fprintf(w, "# TYPE guestbook_submissions_accepted_total counter\n")
	fmt.Fprintf(w, "guestbook_submissions_accepted_total %d\n", submissionsAccepted.Load())

	fmt.Fprintf(w, "# HELP guestbook_validation_failures_total Submissions rejected by the validation pipeline\n")
	fmt.Fprintf(w, "# TYPE guestbook_validation_failures_total counter\n")
	fmt.Fprintf(w, "guestbook_validation_failures_total %d\n", validationFailures.Load())

	fmt.Fprintf(w, "# HELP guestbook_list_renders_total Guestbook pages rendered\n")
	fmt.Fprintf(w, "# TYPE guestbook_list_renders_total counter\n")
	fmt.Fprintf(w, "guestbook_list_renders_total %d\n", listRenders.Load())

	fmt.Fprintf(w, "# HELP guestbook_store_errors_total Store operations that failed\n")
	fmt.Fprintf(w, "# TYPE guestbook_store_errors_total counter\n")
	fmt.Fprintf(w, "guestbook_store_errors_total %d\n", storeErrors.Load())

	fmt.Fprintf(w, "# HELP guestbook_ws_connections Currently connected live-feed clients\n")
	fmt.Fprintf(w, "# TYPE guestbook_ws_connections gauge\n")
	fmt.Fprintf(w, "guestbook_ws_connections %d\n", wsConnections.Load())
}
