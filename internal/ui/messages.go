package ui

import (
	"fmt"

	"github.com/samdwyer/fieldquest/internal/event"
)

// DefaultMessageLines is how many messages the log keeps.
const DefaultMessageLines = 5

// MessageLog turns session events into the lines shown under the field.
// It is the session's event sink.
type MessageLog struct {
	size  int
	lines []string
}

// NewMessageLog keeps the last size lines.
func NewMessageLog(size int) *MessageLog {
	if size <= 0 {
		size = DefaultMessageLines
	}
	return &MessageLog{size: size}
}

// Publish implements event.Sink.
func (l *MessageLog) Publish(e event.Event) {
	switch e.Kind {
	case event.KindEncounterTriggered:
		l.Add(fmt.Sprintf("%s appeared!", e.Enemy.Name))
	case event.KindBattleOutcome:
		l.Add(e.Detail)
	case event.KindPlayerDied:
		l.Add("GAME OVER")
	case event.KindZoneChanged:
		l.Add(fmt.Sprintf("Entered the %s.", e.Zone.Name))
	}
	// Level ups are part of the victory message.
}

// Add appends a line, dropping the oldest beyond the limit.
func (l *MessageLog) Add(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.size {
		l.lines = l.lines[len(l.lines)-l.size:]
	}
}

// Lines returns the lines oldest first.
func (l *MessageLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Clear drops every line.
func (l *MessageLog) Clear() {
	l.lines = nil
}
