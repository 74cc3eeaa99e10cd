package classify

// SeverityRanking is an ordered collection of abnormality events, most
// severe first. Insertion places a new event before the first existing
// event with strictly lower severity, so events of equal severity retain
// insertion order. Linear-scan insertion is deliberate: event counts are
// tiny (<= 5) and a heap would not preserve the stable tie-break.
type SeverityRanking struct {
	events []AbnormalityEvent
}

// NewSeverityRanking creates an empty ranking. Built fresh per run.
func NewSeverityRanking() *SeverityRanking {
	return &SeverityRanking{}
}

// Insert places the event by descending severity, after any existing event
// of equal severity.
func (r *SeverityRanking) Insert(event AbnormalityEvent) {
	pos := len(r.events)
	for i, existing := range r.events {
		if existing.Severity < event.Severity {
			pos = i
			break
		}
	}

	r.events = append(r.events, AbnormalityEvent{})
	copy(r.events[pos+1:], r.events[pos:])
	r.events[pos] = event
}

// Len returns the number of ranked events.
func (r *SeverityRanking) Len() int {
	return len(r.events)
}

// Events returns the ranked events, most severe first.
func (r *SeverityRanking) Events() []AbnormalityEvent {
	out := make([]AbnormalityEvent, len(r.events))
	copy(out, r.events)
	return out
}
