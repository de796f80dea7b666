package rental

import (
	"testing"

	"github.com/cyclepoint/rentalshop-backend/garage"
)

func unit(t garage.BikeType, size garage.Size, susp garage.Suspension, hook, active bool) garage.BikeUnit {
	return garage.BikeUnit{Type: t, Size: size, Suspension: susp, TrailerHook: hook, Active: active}
}

func TestIndexInventory_GroupsAndCounts(t *testing.T) {
	units := []garage.BikeUnit{
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFront, false, true),
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFront, false, true),
		unit(garage.TypeAdult, garage.SizeL, garage.SuspensionFull, true, true),
		unit(garage.TypeTrailer, "", "", false, true),
	}

	groups := IndexInventory(units)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	key := GroupKey{Type: garage.TypeAdult, Size: garage.SizeM, Suspension: garage.SuspensionFront}
	if groups[key].Count != 2 {
		t.Errorf("expected 2 adult/M/front units, got %d", groups[key].Count)
	}

	trailerKey := GroupKey{Type: garage.TypeTrailer}
	if groups[trailerKey].Count != 1 {
		t.Errorf("expected 1 trailer, got %d", groups[trailerKey].Count)
	}
}

func TestIndexInventory_DiscardsInactiveUnits(t *testing.T) {
	units := []garage.BikeUnit{
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFront, false, true),
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFront, false, false),
	}

	groups := IndexInventory(units)
	key := GroupKey{Type: garage.TypeAdult, Size: garage.SizeM, Suspension: garage.SuspensionFront}
	if groups[key].Count != 1 {
		t.Errorf("expected retired unit to be discarded, got count %d", groups[key].Count)
	}
}

func TestIndexInventory_OrderIndependent(t *testing.T) {
	units := []garage.BikeUnit{
		unit(garage.TypeChild, garage.SizeS, garage.SuspensionFront, false, true),
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFull, true, true),
		unit(garage.TypeAdult, garage.SizeM, garage.SuspensionFull, true, true),
		unit(garage.TypeTrailer, "", "", false, true),
	}
	reversed := make([]garage.BikeUnit, len(units))
	for i, u := range units {
		reversed[len(units)-1-i] = u
	}

	a := IndexInventory(units)
	b := IndexInventory(reversed)

	if len(a) != len(b) {
		t.Fatalf("group count differs by input order: %d vs %d", len(a), len(b))
	}
	for key, g := range a {
		if b[key].Count != g.Count {
			t.Errorf("group %v count differs by input order: %d vs %d", key, g.Count, b[key].Count)
		}
	}
}

func TestIndexInventory_EmptyInput(t *testing.T) {
	if groups := IndexInventory(nil); len(groups) != 0 {
		t.Errorf("expected no groups for empty garage, got %d", len(groups))
	}
}
