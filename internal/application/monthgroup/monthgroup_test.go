package monthgroup

import (
	"testing"
	"time"
)

type fakeEvent struct {
	id   string
	date time.Time
}

func (f fakeEvent) OccursOn() time.Time { return f.date }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatter_MonthTitle_Dutch(t *testing.T) {
	f := Formatter{Locale: DefaultLocale}
	cases := []struct {
		date time.Time
		want string
	}{
		{day(2025, time.March, 15), "Maart 2025"},
		{day(2025, time.January, 1), "Januari 2025"},
		{day(2024, time.December, 31), "December 2024"},
		{day(2026, time.August, 9), "Augustus 2026"},
	}
	for _, c := range cases {
		if got := f.MonthTitle(c.date); got != c.want {
			t.Errorf("MonthTitle(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestFormatter_DayLabel_Dutch(t *testing.T) {
	f := Formatter{Locale: DefaultLocale}
	cases := []struct {
		date time.Time
		want string
	}{
		{day(2025, time.March, 15), "Zaterdag 15 mrt"},
		{day(2025, time.March, 17), "Maandag 17 mrt"},
		{day(2025, time.January, 1), "Woensdag 1 jan"},
	}
	for _, c := range cases {
		if got := f.DayLabel(c.date); got != c.want {
			t.Errorf("DayLabel(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestByMonth_GroupsChronologically(t *testing.T) {
	f := Formatter{Locale: DefaultLocale}
	events := []fakeEvent{
		{id: "mar2", date: day(2025, time.March, 21)},
		{id: "jan", date: day(2025, time.January, 5)},
		{id: "mar1", date: day(2025, time.March, 7)},
		{id: "feb", date: day(2025, time.February, 14)},
	}

	groups := ByMonth(events, f)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	wantTitles := []string{"Januari 2025", "Februari 2025", "Maart 2025"}
	for i, want := range wantTitles {
		if groups[i].Title != want {
			t.Errorf("group %d title = %q, want %q", i, groups[i].Title, want)
		}
	}

	mar := groups[2]
	if len(mar.Items) != 2 {
		t.Fatalf("got %d items in Maart, want 2", len(mar.Items))
	}
	if mar.Items[0].id != "mar1" || mar.Items[1].id != "mar2" {
		t.Errorf("Maart items out of order: %s, %s", mar.Items[0].id, mar.Items[1].id)
	}
}

func TestByMonth_YearBoundary(t *testing.T) {
	f := Formatter{Locale: DefaultLocale}
	events := []fakeEvent{
		{id: "new", date: day(2025, time.January, 2)},
		{id: "old", date: day(2024, time.December, 30)},
	}

	groups := ByMonth(events, f)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != (Key{Year: 2024, Month: time.December}) {
		t.Errorf("first group key = %+v, want December 2024", groups[0].Key)
	}
	if groups[1].Key != (Key{Year: 2025, Month: time.January}) {
		t.Errorf("second group key = %+v, want Januari 2025", groups[1].Key)
	}
}

func TestByMonth_SameDateKeepsInputOrder(t *testing.T) {
	f := Formatter{Locale: DefaultLocale}
	events := []fakeEvent{
		{id: "first", date: day(2025, time.May, 10)},
		{id: "second", date: day(2025, time.May, 10)},
	}

	groups := ByMonth(events, f)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Items[0].id != "first" || groups[0].Items[1].id != "second" {
		t.Error("equal dates should keep their relative input order")
	}
}

func TestByMonth_Empty(t *testing.T) {
	groups := ByMonth([]fakeEvent{}, Formatter{Locale: DefaultLocale})
	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0", len(groups))
	}
}

func TestByMonth_InputNotMutated(t *testing.T) {
	events := []fakeEvent{
		{id: "b", date: day(2025, time.June, 2)},
		{id: "a", date: day(2025, time.June, 1)},
	}
	ByMonth(events, Formatter{Locale: DefaultLocale})
	if events[0].id != "b" {
		t.Error("input slice was reordered")
	}
}
