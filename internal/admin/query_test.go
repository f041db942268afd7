package admin_test

import (
	"context"
	"testing"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/influxdata/influxdb1-client/models"

	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-influx/internal/infrastructure/influx"
)

func TestQuery_Passthrough(t *testing.T) {
	resp := &client.Response{
		Results: []client.Result{{
			Series: []models.Row{{
				Name:    "cpu",
				Columns: []string{"time", "value"},
				Values:  [][]interface{}{{"2026-01-01T00:00:00Z", 0.5}},
			}},
		}},
	}
	m := newMockClient()
	m.queryResp = resp
	f, _ := newForwarder(m, nil)

	got, err := f.Query(context.Background(), "metrics", "SELECT * FROM cpu",
		influx.PrecisionMilliseconds, true, config.Overrides{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got != resp {
		t.Error("Query() rewrote the response, want the raw structure untouched")
	}

	calls := m.callLog()
	want := "Query(metrics,SELECT * FROM cpu,ms,true)"
	if len(calls) != 1 || calls[0] != want {
		t.Errorf("calls = %v, want [%s]", calls, want)
	}
}

// A statement-level error still comes back as a raw response with err == nil;
// interpreting it is the caller's business.
func TestQuery_ServerErrorReturnedRaw(t *testing.T) {
	resp := &client.Response{Err: `error parsing query: found SELEC`}
	m := newMockClient()
	m.queryResp = resp
	f, _ := newForwarder(m, nil)

	got, err := f.Query(context.Background(), "metrics", "SELEC * FROM cpu",
		influx.PrecisionSeconds, false, config.Overrides{})
	if err != nil {
		t.Fatalf("Query() error = %v, want nil with error carried in the response", err)
	}
	if got.Error() == nil {
		t.Error("response error lost in passthrough")
	}
}

func TestQuery_DefaultPrecision(t *testing.T) {
	m := newMockClient()
	m.queryResp = &client.Response{}
	f, _ := newForwarder(m, nil)

	var p influx.Precision
	if _, err := f.Query(context.Background(), "metrics", "SHOW SERIES", p, false, config.Overrides{}); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	want := "Query(metrics,SHOW SERIES,s,false)"
	if calls := m.callLog(); calls[0] != want {
		t.Errorf("call = %q, want zero-value precision to forward as seconds", calls[0])
	}
}
