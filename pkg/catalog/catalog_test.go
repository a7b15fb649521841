package catalog

import "testing"

func TestTradeOrderPutsGasEngineerFirst(t *testing.T) {
	trades := Trades()
	if len(trades) == 0 {
		t.Fatal("expected non-empty trade catalog")
	}
	if trades[0].Slug != "gas-engineer" {
		t.Fatalf("expected gas-engineer first, got %q", trades[0].Slug)
	}

	// Plumber carries the bare "leak" synonym, so it must sit after the
	// gas engineer or "gas leak" would resolve to the wrong trade.
	var plumberIdx int
	for i, tr := range trades {
		if tr.Slug == "plumber" {
			plumberIdx = i
		}
	}
	if plumberIdx == 0 {
		t.Fatal("plumber must not be the first catalog entry")
	}
}

func TestLocksmithHasNoBareLockSynonym(t *testing.T) {
	trade, ok := TradeBySlug("locksmith")
	if !ok {
		t.Fatal("locksmith missing from catalog")
	}
	for _, syn := range trade.Synonyms {
		if syn == "lock" || syn == "locked" {
			t.Fatalf("locksmith synonym %q collides with substrings of other trades' phrases", syn)
		}
	}
}

func TestTradeBySlug(t *testing.T) {
	tests := []struct {
		slug string
		ok   bool
	}{
		{"plumber", true},
		{"gas-engineer", true},
		{"breakdown", true},
		{"carpenter", false},
		{"", false},
	}

	for _, tt := range tests {
		trade, ok := TradeBySlug(tt.slug)
		if ok != tt.ok {
			t.Errorf("TradeBySlug(%q) ok = %v, want %v", tt.slug, ok, tt.ok)
		}
		if ok && trade.Slug != tt.slug {
			t.Errorf("TradeBySlug(%q) returned slug %q", tt.slug, trade.Slug)
		}
	}
}

func TestCityByNameIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"London", "london", "LONDON", "mAnChEsTeR"} {
		if _, ok := CityByName(name); !ok {
			t.Errorf("CityByName(%q) = false, want true", name)
		}
	}

	if _, ok := CityByName("Paris"); ok {
		t.Error("CityByName(Paris) = true, want false")
	}
}

func TestCitySlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"London", "london"},
		{"Milton Keynes", "milton-keynes"},
		{"Stoke-on-Trent", "stoke-on-trent"},
	}

	for _, tt := range tests {
		if got := CitySlug(tt.name); got != tt.want {
			t.Errorf("CitySlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestListingPath(t *testing.T) {
	tests := []struct {
		trade string
		city  string
		want  string
	}{
		{"plumber", "London", "/emergency-plumber/london"},
		{"gas-engineer", "Milton Keynes", "/emergency-gas-engineer/milton-keynes"},
		{"glazier", "Stoke-on-Trent", "/emergency-glazier/stoke-on-trent"},
	}

	for _, tt := range tests {
		if got := ListingPath(tt.trade, tt.city); got != tt.want {
			t.Errorf("ListingPath(%q, %q) = %q, want %q", tt.trade, tt.city, got, tt.want)
		}
	}
}
