package models

// Event is a calendar entry on the admin schedule. Date and time are kept
// as the display strings the dashboard submits ("dd-mm-yyyy", "hh:mm AM/PM")
type Event struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
	Participants string `json:"participants"`
	Color        string `json:"color"`
}

// NewEvent creates an event with the default duration and color
func NewEvent(title, date, timeOfDay string) *Event {
	return &Event{
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Duration: "30 minutes",
		Color:    "blue",
	}
}
