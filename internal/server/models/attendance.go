package models

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// AttendanceDay aggregates presence entries for one class on one calendar date.
type AttendanceDay struct {
	ID        string
	ClassID   string
	Day       time.Time
	Entries   []AttendanceEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceEntry is one student's status within an AttendanceDay. Name and
// RollNumber are snapshots taken when the entry was written.
type AttendanceEntry struct {
	DayID      string
	StudentID  string
	Status     AttendanceStatus
	Name       string
	RollNumber string
	MarkedAt   time.Time
}
