package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordQuote(t *testing.T) {
	before := testutil.ToFloat64(QuotesGenerated.WithLabelValues("pdf", ResultSuccess))
	invalidBefore := testutil.ToFloat64(QuotesGenerated.WithLabelValues("pdf", ResultInvalid))

	RecordQuote("pdf", ResultSuccess, 44)
	RecordQuote("pdf", ResultInvalid, 0)

	if got := testutil.ToFloat64(QuotesGenerated.WithLabelValues("pdf", ResultSuccess)); got != before+1 {
		t.Errorf("success counter = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(QuotesGenerated.WithLabelValues("pdf", ResultInvalid)); got != invalidBefore+1 {
		t.Errorf("invalid counter = %v, want %v", got, invalidBefore+1)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/catalog", "200"))

	ObserveHTTPRequest("GET", "/api/catalog", 200, 5*time.Millisecond)

	if got := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/api/catalog", "200")); got != before+1 {
		t.Errorf("request counter = %v, want %v", got, before+1)
	}
	if n := testutil.CollectAndCount(HTTPRequestDuration); n == 0 {
		t.Error("expected duration histogram to have series")
	}
}
