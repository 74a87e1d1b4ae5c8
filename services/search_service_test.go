package services

import (
	"testing"

	"travelapp/constants"
	"travelapp/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Villa  ", "villa"},
		{"São Paulo", "sao paulo"},
		{"TOKYO", "tokyo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("villa", "villa"); got != 1.0 {
		t.Errorf("identical strings should score 1.0, got %v", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("empty strings should score 1.0, got %v", got)
	}
	if got := calculateSimilarity("villa", "tokyo"); got > 0.5 {
		t.Errorf("unrelated strings should score low, got %v", got)
	}
	if got := calculateSimilarity("apartment", "apartmant"); got < 0.7 {
		t.Errorf("near-identical strings should score high, got %v", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"villa in Bali", constants.CategoryVilla},
		{"cozy apartment downtown", constants.CategoryApartment},
		{"cheap stay near the beach", ""},
	}
	for _, tt := range tests {
		if got := parseCategory(tt.query); got != tt.want {
			t.Errorf("parseCategory(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestSearchRanking(t *testing.T) {
	db := newTestDB(t)
	host := createTestUser(t, db, "host", 1)

	listings := []models.Listing{
		{Title: "Beachfront Villa Retreat", Location: "Bali, Indonesia", Category: constants.CategoryVilla, PricePerNight: 300, MaxGuests: 6, HostID: host.ID, IsAvailable: true},
		{Title: "Downtown Apartment", Location: "Tokyo, Japan", Category: constants.CategoryApartment, PricePerNight: 120, MaxGuests: 2, HostID: host.ID, IsAvailable: true},
		{Title: "Hidden Villa", Location: "Tokyo, Japan", Category: constants.CategoryVilla, PricePerNight: 250, MaxGuests: 4, HostID: host.ID, IsAvailable: false},
	}
	for i := range listings {
		if err := db.Create(&listings[i]).Error; err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
	}

	svc := NewSearchService(db)

	results, err := svc.Search("villa in bali, indonesia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Listing.Title != "Beachfront Villa Retreat" {
		t.Errorf("expected the Bali villa first, got %q", results[0].Listing.Title)
	}

	for _, r := range results {
		if !r.Listing.IsAvailable {
			t.Errorf("unavailable listing %q must not be returned", r.Listing.Title)
		}
		if r.Score <= 0 {
			t.Errorf("listing %q returned with non-positive score %d", r.Listing.Title, r.Score)
		}
	}
}
