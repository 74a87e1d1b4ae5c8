package constants

// User roles
const (
	RoleGuest = 0
	RoleHost  = 1
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Listing categories
const (
	CategoryApartment = "apartment"
	CategoryHouse     = "house"
	CategoryVilla     = "villa"
	CategoryCondo     = "condo"
	CategoryCabin     = "cabin"
	CategoryStudio    = "studio"
	CategoryOther     = "other"
)

// Categories is the full category list, in display order.
var Categories = []string{
	CategoryApartment,
	CategoryHouse,
	CategoryVilla,
	CategoryCondo,
	CategoryCabin,
	CategoryStudio,
	CategoryOther,
}
