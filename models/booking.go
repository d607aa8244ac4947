package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCanceled   BookingStatus = "CANCELED"
)

type Booking struct {
	ID       uint          `json:"id" gorm:"primaryKey"`
	UserID   uint          `json:"user_id" gorm:"not null;index"`
	WorkerID *uint         `json:"worker_id" gorm:"index"` // Nullable until matched; in practice set at creation
	Status   BookingStatus `json:"status" gorm:"type:varchar(20);default:'PENDING';check:status IN ('PENDING','CONFIRMED','IN_PROGRESS','COMPLETED','CANCELED')"`

	// Denormalized from the worker at creation time so dashboards render
	// without a join. Stale if the worker later edits their profile.
	WorkerName  string      `json:"worker_name" gorm:"size:255"`
	ServiceType ServiceType `json:"service_type" gorm:"type:varchar(20);not null"`

	Notes       *string    `json:"notes" gorm:"size:1000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User   User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Worker *WorkerProfile `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// NewBooking builds a PENDING booking for the requester, copying the
// worker's name and category at creation time.
func NewBooking(userID uint, worker *WorkerProfile, notes *string, scheduledAt *time.Time) Booking {
	return Booking{
		UserID:      userID,
		WorkerID:    &worker.ID,
		WorkerName:  worker.FullName,
		ServiceType: worker.ServiceType,
		Status:      BookingStatusPending,
		Notes:       notes,
		ScheduledAt: scheduledAt,
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCanceled
}

// IsActive reports whether the booking still needs attention from either party.
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// bookingTransitions is the forward path plus cancellation from any
// non-terminal state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCanceled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCanceled},
	BookingStatusInProgress: {BookingStatusCompleted, BookingStatusCanceled},
}

// CanTransition reports whether the booking may move to next.
func (b *Booking) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidBookingStatus checks whether s is a known booking status.
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCanceled:
		return true
	default:
		return false
	}
}

// PartitionBookings splits bookings into active and past sets. Every
// booking lands in exactly one of the two.
func PartitionBookings(bookings []Booking) (active, past []Booking) {
	for _, b := range bookings {
		if b.Status.IsTerminal() {
			past = append(past, b)
		} else {
			active = append(active, b)
		}
	}
	return active, past
}
