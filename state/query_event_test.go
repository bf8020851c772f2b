package state_test

import (
	"testing"
	"time"

	null "gopkg.in/guregu/null.v3"

	"github.com/tracelog/analyzer/state"
)

var isSlowTests = []struct {
	durationMs  null.Float
	thresholdMs float64
	expected    bool
}{
	{null.FloatFrom(500), 500, true},
	{null.FloatFrom(499.99), 500, false},
	{null.FloatFrom(0), 0, true},
	{null.Float{}, 0, false},
	{null.Float{}, -1, false},
}

func TestQueryEventIsSlow(t *testing.T) {
	for _, test := range isSlowTests {
		event := state.QueryEvent{DurationMs: test.durationMs}
		if actual := event.IsSlow(test.thresholdMs); actual != test.expected {
			t.Errorf("IsSlow(%v) with duration %v: got %v, expected %v", test.thresholdMs, test.durationMs, actual, test.expected)
		}
	}
}

func TestQueryEventSortTime(t *testing.T) {
	ts := time.Date(2025, time.September, 5, 12, 34, 56, 0, time.UTC)
	withTime := state.QueryEvent{Timestamp: null.TimeFrom(ts)}
	withoutTime := state.QueryEvent{}

	if !withTime.SortTime().Equal(ts) {
		t.Errorf("expected SortTime to return the timestamp, got %s", withTime.SortTime())
	}
	if !withoutTime.SortTime().IsZero() || !withoutTime.SortTime().Before(withTime.SortTime()) {
		t.Errorf("expected events without timestamp to sort first, got %s", withoutTime.SortTime())
	}
}
