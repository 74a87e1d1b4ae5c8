package commands

import (
	"gorm.io/gorm"

	"travelapp/models"
)

// Command defines the interface for seeding commands
type Command interface {
	Execute() error
}

// ClearDataCommand removes all listings, bookings and reviews. The user
// pool is kept so reseeding reuses the same identities. Run it inside a
// transaction so a mid-clear failure leaves the prior dataset intact.
type ClearDataCommand struct {
	db *gorm.DB
}

func NewClearDataCommand(db *gorm.DB) *ClearDataCommand {
	return &ClearDataCommand{db: db}
}

func (c *ClearDataCommand) Execute() error {
	// children first so foreign keys never dangle
	if err := c.db.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := c.db.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
		return err
	}
	return c.db.Where("1 = 1").Delete(&models.Listing{}).Error
}
