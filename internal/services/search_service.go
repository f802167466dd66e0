package services

// Notifier surfaces a message to the user
type Notifier interface {
	Notify(message string)
}

// SearchTrigger handles the search button. It does not search anything;
// it only echoes the query back to the user.
type SearchTrigger struct {
	notifier Notifier
}

// NewSearchTrigger creates a new SearchTrigger
func NewSearchTrigger(n Notifier) *SearchTrigger {
	return &SearchTrigger{notifier: n}
}

// Message returns the notification text for a query
func Message(query string) string {
	return "You searched for: " + query
}

// Activate notifies the user of a non-empty query.
// Returns whether a notification was raised.
func (s *SearchTrigger) Activate(query string) bool {
	if query == "" {
		return false
	}
	s.notifier.Notify(Message(query))
	return true
}
