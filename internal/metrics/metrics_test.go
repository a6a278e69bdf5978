package metrics

import "testing"

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordAdd(100)
	r.RecordAdd(200)
	r.RecordCancel(50)
	r.RecordMatch(300, 75)

	s := r.View()
	if s.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", s.TotalOrders)
	}
	if s.TotalCancels != 1 {
		t.Fatalf("expected 1 cancel, got %d", s.TotalCancels)
	}
	if s.TotalMatches != 1 {
		t.Fatalf("expected 1 match, got %d", s.TotalMatches)
	}
	if s.TotalVolume != 75 {
		t.Fatalf("expected volume 75, got %d", s.TotalVolume)
	}
}

func TestPercentileOnEmptyIsZero(t *testing.T) {
	if got := percentile(nil, 99); got != 0 {
		t.Fatalf("expected 0 on empty samples, got %d", got)
	}
}

func TestPercentileMatchesNearestRank(t *testing.T) {
	data := []int64{10, 20, 30, 40, 50}
	if got := percentile(data, 0); got != 10 {
		t.Fatalf("p0: expected 10, got %d", got)
	}
	if got := percentile(data, 100); got != 50 {
		t.Fatalf("p100: expected 50, got %d", got)
	}
}

func TestResetClearsState(t *testing.T) {
	r := NewRecorder()
	r.RecordAdd(1)
	r.Reset()
	s := r.View()
	if s.TotalOrders != 0 || s.AddLatency.Max != 0 {
		t.Fatalf("expected zeroed state after reset, got %+v", s)
	}
}
