package gamestate

import "fmt"

// Entry is one line of the game narrative: a snapshot of the situation
// after the event plus a free-text message
type Entry struct {
	Clock      string
	Score      string
	Possession string
	Message    string
}

// NewEntry snapshots ctx alongside message
func NewEntry(ctx *Context, message string) Entry {
	return Entry{
		Clock:      ctx.Clock.String(),
		Score:      ctx.Score.String(),
		Possession: ctx.Possession.String(),
		Message:    message,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("(%s, %s, %s) %s", e.Clock, e.Score, e.Possession, e.Message)
}

// EventLog is an append-only, chronological record of a game
type EventLog struct {
	entries []Entry
}

// Append adds an entry to the end of the log
func (l *EventLog) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// Len returns the number of entries
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order
func (l *EventLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry
func (l *EventLog) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Lines formats every entry
func (l *EventLog) Lines() []string {
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		lines = append(lines, e.String())
	}
	return lines
}
