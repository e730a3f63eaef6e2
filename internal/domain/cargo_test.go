package domain

import "testing"

func TestSummaryFirst_Empty(t *testing.T) {
	_, err := Summary{}.First()
	if err == nil {
		t.Fatal("expected error for empty summary")
	}
	if !IsKind(err, KindNoResults) {
		t.Fatalf("expected no_results kind, got %v", err)
	}
}

func TestSummaryFirst_ReturnsFirst(t *testing.T) {
	s := Summary{Results: []SummaryItem{{CargoManagementNo: "1"}, {CargoManagementNo: "2"}}}
	got, err := s.First()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CargoManagementNo != "1" {
		t.Fatalf("expected first row, got %+v", got)
	}
}

func TestTrackingEventHasLocation(t *testing.T) {
	cases := []struct {
		addr, tel string
		want      bool
	}{
		{"", "", false},
		{"Busan", "", false},
		{"", "051-000", false},
		{"Busan", "051-000", true},
	}
	for _, c := range cases {
		ev := TrackingEvent{Address: c.addr, Phone: c.tel}
		if got := ev.HasLocation(); got != c.want {
			t.Errorf("HasLocation(%q,%q) = %v, want %v", c.addr, c.tel, got, c.want)
		}
	}
}

func TestChronological_ReversesWithoutMutating(t *testing.T) {
	d := CargoDetail{Events: []TrackingEvent{
		{ProcessedAt: "3"},
		{ProcessedAt: "2"},
		{ProcessedAt: "1"},
	}}

	got := d.Chronological()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].ProcessedAt != want {
			t.Fatalf("event %d: expected %s, got %s", i, want, got[i].ProcessedAt)
		}
	}
	if d.Events[0].ProcessedAt != "3" {
		t.Fatal("expected original order untouched")
	}
}

func TestChronological_Empty(t *testing.T) {
	if got := (CargoDetail{}).Chronological(); len(got) != 0 {
		t.Fatalf("expected no events, got %d", len(got))
	}
}
