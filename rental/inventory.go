package rental

import "github.com/cyclepoint/rentalshop-backend/garage"

// IndexInventory groups active bike units by (type, size, suspension,
// trailer hook) with a count per group. Inactive units are discarded. The
// result does not depend on input order; it is an aggregation, not a
// sequence.
func IndexInventory(units []garage.BikeUnit) map[GroupKey]BikeGroup {
	groups := make(map[GroupKey]BikeGroup)
	for _, u := range units {
		if !u.Active {
			continue
		}
		key := GroupKey{Type: u.Type, Size: u.Size, Suspension: u.Suspension, TrailerHook: u.TrailerHook}
		g, ok := groups[key]
		if !ok {
			g = BikeGroup{Type: u.Type, Size: u.Size, Suspension: u.Suspension, TrailerHook: u.TrailerHook}
		}
		g.Count++
		groups[key] = g
	}
	return groups
}
