package tui

// dialogRequest is a confirmation or an alert raised by the controller.
type dialogRequest struct {
	message  string
	confirm  bool
	onResult func(bool)
}

// dialogQueue collects the controller's dialog requests. The model shows
// them one at a time, in order.
type dialogQueue struct {
	items []dialogRequest
}

func (q *dialogQueue) Confirm(message string, onResult func(bool)) {
	q.items = append(q.items, dialogRequest{message: message, confirm: true, onResult: onResult})
}

func (q *dialogQueue) Alert(message string) {
	q.items = append(q.items, dialogRequest{message: message})
}

func (q *dialogQueue) pop() (dialogRequest, bool) {
	if len(q.items) == 0 {
		return dialogRequest{}, false
	}
	r := q.items[0]
	q.items = q.items[1:]
	return r, true
}

func (q *dialogQueue) len() int { return len(q.items) }
