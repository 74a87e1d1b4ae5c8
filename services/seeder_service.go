package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelapp/builders"
	"travelapp/commands"
	"travelapp/models"
	"travelapp/services/logger"
	"travelapp/utils"
	"travelapp/validator"
)

// bookingRetryCap bounds the overlap-conflict retries per booking so the
// seeder always terminates.
const bookingRetryCap = 10

// Seeder generates a synthetic dataset that satisfies every booking and
// review invariant. The random source is injected so runs are repeatable.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
	log logger.Logger
	now func() time.Time
}

func NewSeeder(db *gorm.DB, rng *rand.Rand, log logger.Logger) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Seeder{
		db:  db,
		rng: rng,
		log: log,
		now: time.Now,
	}
}

// SeedOptions are the seeding targets.
type SeedOptions struct {
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

// DefaultSeedOptions mirrors the documented defaults.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Listings: 20,
		Bookings: 50,
		Reviews:  30,
	}
}

// SeedReport records requested versus created counts. A shortfall means the
// retry budget or the reviewable-booking pool ran out, never a broken
// invariant.
type SeedReport struct {
	Users             int `json:"users"`
	ListingsRequested int `json:"listingsRequested"`
	ListingsCreated   int `json:"listingsCreated"`
	BookingsRequested int `json:"bookingsRequested"`
	BookingsCreated   int `json:"bookingsCreated"`
	BookingsSkipped   int `json:"bookingsSkipped"`
	ReviewsRequested  int `json:"reviewsRequested"`
	ReviewsCreated    int `json:"reviewsCreated"`
}

func (r SeedReport) String() string {
	return fmt.Sprintf("users=%d listings=%d/%d bookings=%d/%d (skipped %d) reviews=%d/%d",
		r.Users,
		r.ListingsCreated, r.ListingsRequested,
		r.BookingsCreated, r.BookingsRequested, r.BookingsSkipped,
		r.ReviewsCreated, r.ReviewsRequested)
}

// Run executes the full seeding pipeline.
func (s *Seeder) Run(opts SeedOptions) (*SeedReport, error) {
	report := &SeedReport{
		ListingsRequested: opts.Listings,
		BookingsRequested: opts.Bookings,
		ReviewsRequested:  opts.Reviews,
	}

	if opts.Clear {
		s.log.Info("clearing existing listings, bookings and reviews")
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return commands.NewClearDataCommand(tx).Execute()
		})
		if err != nil {
			return nil, err
		}
	}

	users, err := s.createUsers()
	if err != nil {
		return nil, err
	}
	report.Users = len(users)

	listings, err := s.createListings(opts.Listings, users)
	if err != nil {
		return nil, err
	}
	report.ListingsCreated = len(listings)

	bookings, skipped, err := s.createBookings(opts.Bookings, listings, users)
	if err != nil {
		return nil, err
	}
	report.BookingsCreated = len(bookings)
	report.BookingsSkipped = skipped

	created, err := s.createReviews(opts.Reviews, bookings)
	if err != nil {
		return nil, err
	}
	report.ReviewsCreated = created

	s.log.Info("seeding finished: %s", report)
	return report, nil
}

// createUsers ensures the fixed user pool exists. Existing rows are reused
// so reseeding does not duplicate identities.
func (s *Seeder) createUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(seedUsers))

	for _, entry := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		user := models.User{
			Username:  entry.Username,
			Email:     entry.Email,
			Password:  string(hashed),
			FirstName: entry.FirstName,
			LastName:  entry.LastName,
			Role:      entry.Role,
		}
		if err := s.db.Where("username = ?", entry.Username).FirstOrCreate(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	s.log.Info("created %d users", len(users))
	return users, nil
}

// createListings creates the curated listings first, then randomized ones
// until count is reached.
func (s *Seeder) createListings(count int, users []models.User) ([]models.Listing, error) {
	listings := make([]models.Listing, 0, count)

	for i := 0; i < count && i < len(seedListings); i++ {
		listing := seedListings[i]
		listing.HostID = s.randomUser(users).ID
		listing.IsAvailable = true
		if err := s.createListing(&listing); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	categories := []string{"apartment", "house", "villa", "condo", "cabin", "studio"}
	for i := len(listings); i < count; i++ {
		category := categories[s.rng.Intn(len(categories))]
		location := seedLocations[s.rng.Intn(len(seedLocations))]

		listing := models.Listing{
			Title:           fmt.Sprintf("Amazing %s #%d", category, i+1),
			Description:     fmt.Sprintf("A wonderful place to stay in %s.", location),
			Location:        location,
			PricePerNight:   float64(50 + s.rng.Intn(251)),
			Category:        category,
			Bedrooms:        1 + s.rng.Intn(4),
			Bathrooms:       1 + s.rng.Intn(3),
			MaxGuests:       1 + s.rng.Intn(8),
			HostID:          s.randomUser(users).ID,
			Wifi:            s.rng.Intn(2) == 1,
			Parking:         s.rng.Intn(2) == 1,
			Pool:            s.rng.Intn(2) == 1,
			Kitchen:         s.rng.Intn(2) == 1,
			AirConditioning: s.rng.Intn(2) == 1,
			IsAvailable:     true,
		}
		if err := s.createListing(&listing); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	s.log.Info("created %d listings", len(listings))
	return listings, nil
}

func (s *Seeder) createListing(listing *models.Listing) error {
	if err := validator.ValidateListing(listing); err != nil {
		return err
	}
	return s.db.Create(listing).Error
}

// createBookings proposes random stays and retries each booking against the
// capacity and overlap validators until it fits or the retry budget runs
// out. Exhausted proposals are skipped, never forced.
func (s *Seeder) createBookings(count int, listings []models.Listing, users []models.User) ([]models.Booking, int, error) {
	if len(listings) == 0 || count == 0 {
		return nil, count, nil
	}

	// per-listing windows the overlap validator sees
	windows := make(map[string][]models.Booking)
	bookings := make([]models.Booking, 0, count)
	skipped := 0

	for i := 0; i < count; i++ {
		booking, ok := s.proposeBooking(listings, users, windows)
		if !ok {
			skipped++
			continue
		}

		if err := s.db.Create(booking).Error; err != nil {
			return nil, skipped, err
		}

		if booking.Status != models.BookingStatusCancelled {
			key := booking.ListingID.String()
			windows[key] = append(windows[key], *booking)
		}
		bookings = append(bookings, *booking)
	}

	s.log.Info("created %d bookings, skipped %d", len(bookings), skipped)
	return bookings, skipped, nil
}

func (s *Seeder) proposeBooking(listings []models.Listing, users []models.User, windows map[string][]models.Booking) (*models.Booking, bool) {
	for attempt := 0; attempt < bookingRetryCap; attempt++ {
		listing := listings[s.rng.Intn(len(listings))]

		guest := s.randomUser(users)
		for guest.ID == listing.HostID {
			guest = s.randomUser(users)
		}

		status := s.weightedStatus()
		checkIn, checkOut := s.randomStay(status)

		maxGuests := listing.MaxGuests
		if maxGuests > 6 {
			maxGuests = 6
		}
		numGuests := 1 + s.rng.Intn(maxGuests)

		if err := validator.ValidateCapacity(numGuests, listing.MaxGuests); err != nil {
			continue
		}
		if status != models.BookingStatusCancelled {
			if err := validator.ValidateNoOverlap(checkIn, checkOut, windows[listing.ID.String()], uuid.Nil); err != nil {
				continue
			}
		}

		total, err := validator.ComputeTotalPrice(checkIn, checkOut, listing.PricePerNight)
		if err != nil {
			continue
		}

		booking := builders.NewBookingBuilder().
			WithListing(listing.ID).
			WithGuest(guest.ID).
			WithDates(checkIn, checkOut).
			WithGuestCount(numGuests).
			WithStatus(status).
			WithTotalPrice(total).
			WithSpecialRequests(seedSpecialRequests[s.rng.Intn(len(seedSpecialRequests))]).
			Build()
		return booking, true
	}

	return nil, false
}

// weightedStatus draws a booking status; completed is weighted up so the
// review step has a pool to sample from.
func (s *Seeder) weightedStatus() int {
	roll := s.rng.Intn(100)
	switch {
	case roll < 20:
		return models.BookingStatusPending
	case roll < 45:
		return models.BookingStatusConfirmed
	case roll < 60:
		return models.BookingStatusCancelled
	default:
		return models.BookingStatusCompleted
	}
}

// randomStay places finished bookings in the past and open ones in the
// future, so completed stays look plausible and pending ones pass the
// past-date rule at the API boundary.
func (s *Seeder) randomStay(status int) (time.Time, time.Time) {
	today := utils.DateOnly(s.now())

	var start time.Time
	if status == models.BookingStatusCompleted || status == models.BookingStatusCancelled {
		start = today.AddDate(0, 0, -(30 + s.rng.Intn(61)))
	} else {
		start = today.AddDate(0, 0, 1+s.rng.Intn(60))
	}

	duration := 1 + s.rng.Intn(14)
	return start, start.AddDate(0, 0, duration)
}

// createReviews samples completed bookings that are still unreviewed. The
// pool can run out before count is reached; the shortfall is reported.
func (s *Seeder) createReviews(count int, bookings []models.Booking) (int, error) {
	if count == 0 {
		return 0, nil
	}

	var pool []models.Booking
	for _, booking := range bookings {
		if booking.Status == models.BookingStatusCompleted {
			pool = append(pool, booking)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	type pair struct {
		userID    uint
		listingID string
	}
	reviewed := make(map[pair]bool)
	created := 0

	for _, booking := range pool {
		if created >= count {
			break
		}

		key := pair{booking.UserID, booking.ListingID.String()}
		if reviewed[key] {
			continue
		}

		var existing int64
		if err := s.db.Model(&models.Review{}).
			Where("user_id = ? AND listing_id = ?", booking.UserID, booking.ListingID).
			Count(&existing).Error; err != nil {
			return created, err
		}
		if existing > 0 {
			reviewed[key] = true
			continue
		}

		rating := s.weightedRating()
		bookingID := booking.ID
		review := models.Review{
			ListingID: booking.ListingID,
			UserID:    booking.UserID,
			BookingID: &bookingID,
			Rating:    rating,
			Comment:   s.commentForRating(rating),
		}
		if err := validator.ValidateReview(&review); err != nil {
			return created, err
		}
		if err := s.db.Create(&review).Error; err != nil {
			return created, err
		}

		reviewed[key] = true
		created++
	}

	s.log.Info("created %d reviews", created)
	return created, nil
}

// weightedRating draws a 1-5 rating with weights 5/10/20/35/30.
func (s *Seeder) weightedRating() int {
	roll := s.rng.Intn(100)
	switch {
	case roll < 5:
		return 1
	case roll < 15:
		return 2
	case roll < 35:
		return 3
	case roll < 70:
		return 4
	default:
		return 5
	}
}

func (s *Seeder) commentForRating(rating int) string {
	switch {
	case rating >= 4:
		return positiveComments[s.rng.Intn(len(positiveComments))]
	case rating == 3:
		return neutralComments[s.rng.Intn(len(neutralComments))]
	default:
		return negativeComments[s.rng.Intn(len(negativeComments))]
	}
}

func (s *Seeder) randomUser(users []models.User) models.User {
	return users[s.rng.Intn(len(users))]
}
