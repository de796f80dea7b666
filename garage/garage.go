// Package garage tracks the shop's physical fleet: every bike and trailer as
// an individually owned unit.
package garage

import (
	"time"

	"github.com/google/uuid"
)

type BikeType string

const (
	TypeChild        BikeType = "child"
	TypeAdult        BikeType = "adult"
	TypeTrailer      BikeType = "trailer"
	TypeChildTrailer BikeType = "child-trailer"
)

// IsTrailer reports whether the unit is towed rather than ridden. Trailers
// have no size or suspension and bill at the trailer rates.
func (t BikeType) IsTrailer() bool {
	return t == TypeTrailer || t == TypeChildTrailer
}

type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

type Suspension string

const (
	SuspensionFull  Suspension = "full"
	SuspensionFront Suspension = "front"
)

// BikeUnit is one physical, individually tracked bike or trailer.
type BikeUnit struct {
	// ID is an internal identifier for a unit.
	ID uuid.UUID

	Type BikeType `db:"bike_type"`

	// Size and Suspension are empty for trailers.
	Size       Size
	Suspension Suspension

	// TrailerHook marks bikes that can tow a trailer. Meaningless for
	// trailers themselves.
	TrailerHook bool `db:"trailer_hook"`

	// Active units count towards availability. Retired units stay in the
	// database for bookkeeping but are never offered.
	Active bool

	CreatedAt time.Time `db:"created_at"`
}
