package domain

import "time"

// ContactMessage represents a message sent through the contact form
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
