package model

// Profile holds the user-editable account settings kept by the task backend.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}
