package gcalendar

import "time"

// CreateEventRequest is the input for creating an all-day Google Calendar
// event for a task due date.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	DueDate     time.Time // plain calendar date; rendered as an all-day event
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	DueDate     time.Time
}
