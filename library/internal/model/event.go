package model

import (
	"time"
)

type EventType string

const (
	EventBookBorrowed      EventType = "BookBorrowed"
	EventBookReturned      EventType = "BookReturned"
	EventBookMarkedMissing EventType = "BookMarkedMissing"
	EventBookOverdue       EventType = "BookOverdue"
	EventFinePaid          EventType = "FinePaid"
	EventStudentRegistered EventType = "StudentRegistered"
	EventStudentRemoved    EventType = "StudentRemoved"
)

// LoanEvent is published after a committed state change.
type LoanEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	StudentID  string    `json:"student_id"`
	BookID     string    `json:"book_id,omitempty"`
	Fine       int       `json:"fine"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Key partitions events by student so one student's history stays ordered.
func (e LoanEvent) Key() string {
	return e.StudentID
}
