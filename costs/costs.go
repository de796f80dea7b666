package costs

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type Category int

const (
	Rent Category = iota
	Insurance
	Maintenance
	Other
)

func (c Category) String() string {
	return [...]string{"rent", "insurance", "maintenance", "other"}[c]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) Scan(i any) error {
	if s, ok := i.(string); ok {
		for v := Rent; v <= Other; v++ {
			if v.String() == s {
				*c = v
				return nil
			}
		}
	}
	return fmt.Errorf("invalid cost category %v", i)
}

// Entry is one recurring fixed cost in the shop ledger: rent, insurance,
// the workshop service contract. Amounts are per month.
type Entry struct {
	ID            uuid.UUID `json:"id"`
	Label         string    `json:"label"`
	MonthlyAmount float64   `json:"monthlyAmount" db:"monthly_amount"`
	Category      Category  `json:"category"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
