package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const (
	StatusDefault   = "pending"
	PriorityDefault = "medium"
)

// ErrNotFound is returned by repositories when a row is absent or owned by a
// different caller; the two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("record not found")

// StringList stores a JSON array in a TEXT column. It always marshals to a
// JSON array, never null, so an empty image list round-trips as [].
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

type RepairJob struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index;not null" json:"-"`
	CustomerName     string     `gorm:"size:100;not null" json:"customer_name"`
	DeviceType       string     `gorm:"size:50;not null" json:"device_type"`
	DeviceModel      string     `gorm:"size:100;not null" json:"device_model"`
	IssueDescription string     `gorm:"type:text;not null" json:"issue_description"`
	Status           string     `gorm:"size:20;default:pending" json:"status"`
	Priority         string     `gorm:"size:10;default:medium" json:"priority"`
	EstimatedCost    *float64   `json:"estimated_cost"`
	ActualCost       *float64   `json:"actual_cost"`
	Notes            *string    `gorm:"type:text" json:"notes"`
	Images           StringList `gorm:"type:text" json:"images"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RepairJob) TableName() string { return "repair_jobs" }

// RepairJobRepository is owner-scoped: every lookup and mutation carries the
// caller's user id, and a job under a different owner behaves as absent.
type RepairJobRepository interface {
	ListByOwner(ownerID uint) ([]RepairJob, error)
	FindOwned(ownerID, jobID uint) (*RepairJob, error)
	Create(j *RepairJob) error
	Update(j *RepairJob) error
	DeleteOwned(ownerID, jobID uint) error
}
