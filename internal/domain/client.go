package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClientTier classifies clients in the registry
type ClientTier string

const (
	TierRegular ClientTier = "regular"
	TierVIP     ClientTier = "vip"
)

// Client represents an entry in the salon's client registry
type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Notes     *string
	Tier      ClientTier
	CreatedAt time.Time
	UpdatedAt time.Time
}
