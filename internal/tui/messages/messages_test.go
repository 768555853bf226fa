package messages

import "testing"

func TestParseView(t *testing.T) {
	tests := []struct {
		in     string
		want   ViewType
		wantOK bool
	}{
		{"dashboard", ViewDashboard, true},
		{"Nutrition", ViewNutrition, true},
		{"  notes ", ViewNotes, true},
		{"month", ViewMonth, true},
		{"", ViewDashboard, false},
		{"boards", ViewDashboard, false},
	}

	for _, tt := range tests {
		got, ok := ParseView(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseView(%q): want (%v, %v), got (%v, %v)", tt.in, tt.want, tt.wantOK, got, ok)
		}
	}
}

func TestViewNamesRoundTrip(t *testing.T) {
	for _, v := range Views {
		got, ok := ParseView(v.String())
		if !ok || got != v {
			t.Errorf("view %d: %q did not parse back", v, v.String())
		}
	}
}

func TestTitleLocale(t *testing.T) {
	if got := ViewDashboard.Title("ru"); got != "Мой День" {
		t.Errorf("ru title: got %q", got)
	}
	if got := ViewDashboard.Title("en-US"); got != "My Day" {
		t.Errorf("en title: got %q", got)
	}
	if got := ViewNotes.Description(""); got == "" {
		t.Error("expected a default-locale description")
	}
}
