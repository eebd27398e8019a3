package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := DefaultRegistry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestToolCallsTotal(t *testing.T) {
	labels := map[string]string{"tool": "create_task", "status": StatusInvalid}
	before := counterValue(t, "devflow_tool_calls_total", labels)
	ToolCallsTotal.WithLabelValues("create_task", StatusInvalid).Inc()
	after := counterValue(t, "devflow_tool_calls_total", labels)
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %v", after-before)
	}
}

func TestHandler(t *testing.T) {
	ClassificationsTotal.WithLabelValues(VariantSimple, "success").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "devflow_classifications_total") {
		t.Error("expected devflow_classifications_total in exposition")
	}
}
