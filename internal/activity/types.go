package activity

// AddInput is the input for scheduling a daily activity.
type AddInput struct {
	Name string
	Date string // YYYY-MM-DD
	Time string // HH:MM
}
