package sim

import "fmt"

// Event is one recorded occurrence during a run. Unlike the zap-backed
// process logger (SPEC_FULL §10.1), Event/EventLog is the queryable,
// tick-indexed timeline tests and the reporter assert against — the direct
// descendant of the teacher's SimLog.
type Event struct {
	Tick     int
	AgentID  int // -1 for global/coordinator events
	Category string
	Key      string
	Value    string
}

// String formats an entry as a fixed-width log line, e.g.:
//
//	[T=042] A3   goal      reassigned       (7,12)
func (e Event) String() string {
	agent := "--"
	if e.AgentID >= 0 {
		agent = fmt.Sprintf("A%d", e.AgentID)
	}
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s", e.Tick, agent, e.Category, e.Key, e.Value)
}

// EventLog collects structured events across a run. Unbounded and
// machine-readable, unlike the bounded/interactive debug overlays a
// renderer would maintain.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Add records an event.
func (l *EventLog) Add(tick, agentID int, category, key, value string) {
	l.entries = append(l.entries, Event{Tick: tick, AgentID: agentID, Category: category, Key: key, Value: value})
}

// Entries returns every recorded event, in recording order.
func (l *EventLog) Entries() []Event { return l.entries }

// Filter returns every event matching category and key (empty string
// matches any value for that field).
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}
