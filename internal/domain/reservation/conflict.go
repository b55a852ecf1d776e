package reservation

// Conflict checking is pure interval logic; occupancy lookups stay in the
// store where the resource index lives.

// HasOverlap reports whether any existing reservation's window overlaps w.
func HasOverlap(existing []*Reservation, w Window) bool {
	for _, r := range existing {
		if r.Window().Overlaps(w) {
			return true
		}
	}
	return false
}
