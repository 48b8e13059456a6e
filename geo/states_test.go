package geo

import "testing"

func TestResolveStateCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"California", "CA", true},
		{"ca", "CA", true},
		{"CA", "CA", true},
		{"  new york ", "NY", true},
		{"New-York", "NY", false}, // hyphen strips to "newyork", no match
		{"Nowhereland", "", false},
		{"", "", false},
		{"Illinois!!", "IL", true},
	}

	for _, tt := range tests {
		got, ok := ResolveStateCode(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveStateCode(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCleanLocation(t *testing.T) {
	if got := CleanLocation(" San Jose, 95113 "); got != "San Jose " {
		t.Errorf("CleanLocation = %q", got)
	}
}

func TestLookupZip(t *testing.T) {
	c, ok := LookupZip("61820")
	if !ok || c.Latitude != DefaultLatitude || c.Longitude != DefaultLongitude {
		t.Errorf("LookupZip(61820) = %+v, %v", c, ok)
	}
	if _, ok := LookupZip("00000"); ok {
		t.Error("LookupZip(00000) should be unknown")
	}
}
