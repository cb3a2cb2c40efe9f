package model

// NotificationField represents a labelled value within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification is a transport-agnostic rich message for downstream notifiers.
type Notification struct {
	Headline    string
	Title       string
	URL         string
	Description string
	Color       int
	Fields      []NotificationField
	Footer      string
}
