package services

import (
	"travelapp/constants"
	"travelapp/models"
)

// seedUser is one entry of the fixed user pool.
type seedUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      int
}

var seedUsers = []seedUser{
	{"alice_host", "alice@example.com", "Alice", "Johnson", "password123", constants.RoleHost},
	{"bob_traveler", "bob@example.com", "Bob", "Smith", "password123", constants.RoleGuest},
	{"charlie_host", "charlie@example.com", "Charlie", "Brown", "password123", constants.RoleHost},
	{"diana_guest", "diana@example.com", "Diana", "Wilson", "password123", constants.RoleGuest},
	{"eve_explorer", "eve@example.com", "Eve", "Davis", "password123", constants.RoleGuest},
	{"frank_host", "frank@example.com", "Frank", "Miller", "password123", constants.RoleHost},
	{"grace_nomad", "grace@example.com", "Grace", "Taylor", "password123", constants.RoleGuest},
	{"henry_backpacker", "henry@example.com", "Henry", "Anderson", "password123", constants.RoleGuest},
}

// seedListings are the curated listings created before random ones.
var seedListings = []models.Listing{
	{
		Title:         "Cozy Downtown Apartment",
		Description:   "A beautiful apartment in the heart of the city with modern amenities and stunning views.",
		Location:      "New York, NY",
		PricePerNight: 120,
		Category:      constants.CategoryApartment,
		Bedrooms:      2, Bathrooms: 1, MaxGuests: 4,
		Wifi: true, Kitchen: true, AirConditioning: true,
	},
	{
		Title:         "Beachfront Villa Paradise",
		Description:   "Luxury villa with direct beach access, perfect for a relaxing getaway.",
		Location:      "Miami, FL",
		PricePerNight: 350,
		Category:      constants.CategoryVilla,
		Bedrooms:      4, Bathrooms: 3, MaxGuests: 8,
		Wifi: true, Pool: true, Parking: true, Kitchen: true,
	},
	{
		Title:         "Mountain Cabin Retreat",
		Description:   "Rustic cabin surrounded by nature, ideal for hiking and outdoor activities.",
		Location:      "Aspen, CO",
		PricePerNight: 180,
		Category:      constants.CategoryCabin,
		Bedrooms:      3, Bathrooms: 2, MaxGuests: 6,
		Wifi: true, Parking: true, Kitchen: true,
	},
	{
		Title:         "Modern Studio Loft",
		Description:   "Stylish studio perfect for solo travelers or couples.",
		Location:      "San Francisco, CA",
		PricePerNight: 95,
		Category:      constants.CategoryStudio,
		Bedrooms:      1, Bathrooms: 1, MaxGuests: 2,
		Wifi: true, Kitchen: true, AirConditioning: true,
	},
	{
		Title:         "Historic Townhouse",
		Description:   "Charming historic home with modern updates in a quiet neighborhood.",
		Location:      "Boston, MA",
		PricePerNight: 160,
		Category:      constants.CategoryHouse,
		Bedrooms:      3, Bathrooms: 2, MaxGuests: 6,
		Wifi: true, Parking: true, Kitchen: true,
	},
	{
		Title:         "Luxury Penthouse Suite",
		Description:   "High-end penthouse with panoramic city views and premium amenities.",
		Location:      "Chicago, IL",
		PricePerNight: 275,
		Category:      constants.CategoryApartment,
		Bedrooms:      3, Bathrooms: 2, MaxGuests: 6,
		Wifi: true, Pool: true, AirConditioning: true, Parking: true,
	},
	{
		Title:         "Seaside Cottage",
		Description:   "Quaint cottage just steps from the beach with ocean views.",
		Location:      "Myrtle Beach, SC",
		PricePerNight: 140,
		Category:      constants.CategoryHouse,
		Bedrooms:      2, Bathrooms: 1, MaxGuests: 4,
		Wifi: true, Kitchen: true, Parking: true,
	},
	{
		Title:         "Urban Condo with City Views",
		Description:   "Modern condo in the financial district with great city views.",
		Location:      "Seattle, WA",
		PricePerNight: 110,
		Category:      constants.CategoryCondo,
		Bedrooms:      2, Bathrooms: 1, MaxGuests: 4,
		Wifi: true, Kitchen: true, AirConditioning: true,
	},
}

var seedLocations = []string{
	"Austin, TX", "Portland, OR", "Denver, CO", "Nashville, TN",
	"Las Vegas, NV", "Phoenix, AZ", "San Diego, CA", "Atlanta, GA",
	"New Orleans, LA", "Orlando, FL", "Minneapolis, MN", "Detroit, MI",
}

var seedSpecialRequests = []string{
	"", "Early check-in please", "Late checkout requested",
	"Ground floor preferred", "Quiet room please",
	"Extra towels needed", "Vegetarian breakfast",
}

var positiveComments = []string{
	"Amazing place! The host was very welcoming and the location was perfect.",
	"Beautiful property with all the amenities we needed. Would definitely stay again!",
	"Clean, comfortable, and exactly as described. Great value for money.",
	"Perfect for our family vacation. The kids loved the space and amenities.",
	"Fantastic location and the host provided excellent recommendations for local attractions.",
	"The property exceeded our expectations. Everything was spotless and well-maintained.",
	"Great communication from the host and seamless check-in process.",
	"Lovely place with stunning views. We had a wonderful time here.",
}

var neutralComments = []string{
	"Nice place overall. A few minor issues but nothing major.",
	"Good location and decent amenities. Pretty much what we expected.",
	"Clean and comfortable. Could use some updates but served our needs.",
	"Average experience. The place was fine for our short stay.",
	"Decent value for the price. Some areas could be improved.",
	"Acceptable accommodation. Met our basic needs for the trip.",
}

var negativeComments = []string{
	"Place was not as clean as expected and some amenities weren't working.",
	"Location was good but the property needs maintenance and updates.",
	"Had some issues with the booking but the host was responsive.",
	"The place was smaller than expected and could use better cleaning.",
	"Some inconveniences during our stay but manageable overall.",
}
