package model

// Activity is a recurring daily-schedule entry, independent of Task. It has
// no completion state.
type Activity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"` // calendar date, YYYY-MM-DD
	Time    string `json:"time"` // clock time, HH:MM
	Pending bool   `json:"-"`    // placeholder awaiting server confirmation
}
