package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceType is the category of work a worker offers. "all" marks an
// all-purpose worker who matches every category.
type ServiceType string

const (
	ServicePlumber     ServiceType = "plumber"
	ServiceElectrician ServiceType = "electrician"
	ServiceMechanic    ServiceType = "mechanic"
	ServiceAll         ServiceType = "all"
)

// WorkerStatus is the approval state of a worker profile.
type WorkerStatus string

const (
	WorkerStatusPendingReview WorkerStatus = "PENDING_REVIEW"
	WorkerStatusApproved      WorkerStatus = "APPROVED"
	WorkerStatusSuspended     WorkerStatus = "SUSPENDED"
)

// WorkerProfile represents a worker's professional profile
type WorkerProfile struct {
	ID                uint         `json:"id" gorm:"primaryKey"`
	UserID            uint         `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName          string       `json:"full_name" gorm:"size:255;not null"`
	PhoneNumber       string       `json:"phone_number" gorm:"size:20;not null"`
	ServiceType       ServiceType  `json:"service_type" gorm:"type:varchar(20);not null;check:service_type IN ('plumber','electrician','mechanic','all')"`
	Experience        string       `json:"experience" gorm:"type:text"`
	YearsOfExperience int          `json:"years_of_experience" gorm:"not null;default:0;check:years_of_experience >= 0"`
	ServiceArea       string       `json:"service_area" gorm:"size:255"`
	WillingToTravel   bool         `json:"willing_to_travel" gorm:"default:false"`
	IsAvailable       bool         `json:"is_available" gorm:"default:false"`
	Status            WorkerStatus `json:"status" gorm:"type:varchar(20);not null;default:'APPROVED';check:status IN ('PENDING_REVIEW','APPROVED','SUSPENDED')"`
	TotalEarnings     float64      `json:"total_earnings" gorm:"type:decimal(10,2);default:0"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the WorkerProfile model
func (WorkerProfile) TableName() string {
	return "worker_profiles"
}

// IsDiscoverable reports whether the worker shows up in browse results.
func (w *WorkerProfile) IsDiscoverable() bool {
	return w.IsAvailable && w.Status == WorkerStatusApproved
}

// Matches reports whether the worker serves the requested category,
// either directly or as an all-purpose worker.
func (w *WorkerProfile) Matches(serviceType ServiceType) bool {
	return w.ServiceType == serviceType || w.ServiceType == ServiceAll
}

// WorkerProfileRequest represents the request structure for creating/updating a worker profile
type WorkerProfileRequest struct {
	ServiceType       ServiceType `json:"service_type" binding:"required"`
	Experience        string      `json:"experience" binding:"required"`
	YearsOfExperience *int        `json:"years_of_experience" binding:"required"`
	ServiceArea       string      `json:"service_area" binding:"required"`
	WillingToTravel   bool        `json:"willing_to_travel"`
}

// IsValidServiceType checks whether s is one of the fixed service categories.
func IsValidServiceType(s ServiceType) bool {
	switch s {
	case ServicePlumber, ServiceElectrician, ServiceMechanic, ServiceAll:
		return true
	default:
		return false
	}
}

// IsValidWorkerStatus checks whether s is a known approval state.
func IsValidWorkerStatus(s WorkerStatus) bool {
	switch s {
	case WorkerStatusPendingReview, WorkerStatusApproved, WorkerStatusSuspended:
		return true
	default:
		return false
	}
}

// BrowsableServiceTypes returns the categories a customer can browse.
// "all" is a worker-side wildcard, not a browsable category.
func BrowsableServiceTypes() []ServiceType {
	return []ServiceType{ServicePlumber, ServiceElectrician, ServiceMechanic}
}
