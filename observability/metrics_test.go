package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("Test", "weather", "200"))
	ObserveUpstream("Test", "weather", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("Test", "weather", "200"))
	if after != before+1 {
		t.Errorf("expected counter to grow by 1, got %v -> %v", before, after)
	}

	ObserveUpstream("Test", "weather", 0, time.Millisecond)
	if got := testutil.ToFloat64(UpstreamRequests.WithLabelValues("Test", "weather", "error")); got < 1 {
		t.Errorf("expected transport failure to be counted, got %v", got)
	}
}

func TestHandlerExposesLookups(t *testing.T) {
	ObserveLookup("city", "ok")

	rw := httptest.NewRecorder()
	Handler().ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rw.Code)
	}
	if !strings.Contains(rw.Body.String(), `weather_lookup_lookups_total{mode="city",outcome="ok"}`) {
		t.Errorf("expected lookup counter in exposition, got:\n%s", rw.Body.String())
	}
}
