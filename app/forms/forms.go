package forms

// Errors maps a form field name to a user-facing message. An empty map means
// the input passed validation.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e Errors) Any() bool {
	return len(e) > 0
}
