package domain

// FindConflict returns the first scheduled appointment in existing whose window
// overlaps candidate, or nil. existing must already be narrowed to one provider
// and one day. excludeID skips the appointment being rescheduled.
//
// Which overlapping appointment is returned depends on the order of existing;
// callers should only rely on nil / non-nil.
func FindConflict(candidate Window, excludeID *int64, existing []*Appointment) *Appointment {
	for _, a := range existing {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if !a.IsScheduled() {
			continue
		}
		if candidate.Overlaps(a.Window()) {
			return a
		}
	}
	return nil
}

// HasConflict is FindConflict as a predicate.
func HasConflict(candidate Window, excludeID *int64, existing []*Appointment) bool {
	return FindConflict(candidate, excludeID, existing) != nil
}
