package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"travelapp/constants"
	"travelapp/models"
)

// SearchService ranks listings against a free-text query
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// ScoredListing pairs a listing with its query relevance score.
type ScoredListing struct {
	Listing models.Listing `json:"listing"`
	Score   int            `json:"score"`
}

// normalizeInput folds accents and case so queries match stored text.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher builds a closestmatch index over keywords
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity returns the normalized levenshtein similarity of two strings
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// parseCategory maps a query onto a listing category, or "".
func parseCategory(query string) string {
	normalizedQuery := normalizeInput(query)
	matcher := createMatcher(constants.Categories)

	match := matcher.Closest(normalizedQuery)
	if match != "" && strings.Contains(normalizedQuery, match) {
		return match
	}

	for _, category := range constants.Categories {
		if strings.Contains(normalizedQuery, category) {
			return category
		}
	}
	return ""
}

// prepareLocationList collects the unique normalized locations for closestmatch
func prepareLocationList(listings []models.Listing) []string {
	uniqueValues := make(map[string]bool)
	for _, listing := range listings {
		if listing.Location != "" {
			uniqueValues[normalizeInput(listing.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// calculateScore scores one listing against the query
func calculateScore(query string, listing models.Listing, cmLocation *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if category := parseCategory(normalizedQuery); category != "" && category == listing.Category {
		score += 20
	}

	if cmLocation.Closest(normalizedQuery) == normalizeInput(listing.Location) {
		score += 13
	}

	for _, word := range strings.Fields(normalizeInput(listing.Title)) {
		if len(word) < 4 {
			continue
		}
		if strings.Contains(normalizedQuery, word) || calculateSimilarity(normalizedQuery, word) > 0.7 {
			score += 4
			break
		}
	}

	return score
}

// rankListings filters and sorts listings by descending score.
func rankListings(query string, listings []models.Listing, cmLocation *closestmatch.ClosestMatch) []ScoredListing {
	var scored []ScoredListing
	for _, listing := range listings {
		score := calculateScore(query, listing, cmLocation)
		if score > 0 {
			scored = append(scored, ScoredListing{Listing: listing, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Search loads available listings and ranks them against the query.
func (s *SearchService) Search(query string) ([]ScoredListing, error) {
	var listings []models.Listing
	if err := s.db.Preload("Host").Where("is_available = ?", true).Find(&listings).Error; err != nil {
		return nil, err
	}

	cmLocation := createMatcher(prepareLocationList(listings))
	return rankListings(query, listings, cmLocation), nil
}
