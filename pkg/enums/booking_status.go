package enums

// BookingStatus tracks a booking through its lifecycle:
// PENDING -> CONFIRMED/REJECTED -> COMPLETED/CANCELLED.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
