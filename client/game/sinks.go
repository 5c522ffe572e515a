package game

import (
	gamecore "github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
)

// QueueSink forwards session notifications and audio cues onto the UI event
// queue. The session may call it from timer or fetch goroutines; the scene
// drains the queue on the update loop.
type QueueSink struct {
	events queue.Queue[messages.Event]
}

var _ gamecore.Notifier = &QueueSink{}
var _ gamecore.AudioSink = &QueueSink{}

func NewQueueSink(events queue.Queue[messages.Event]) *QueueSink {
	return &QueueSink{
		events: events,
	}
}

func (s *QueueSink) Notify(kind gamecore.NotificationKind, message string) {
	s.enqueue(messages.EventTypeToast, &messages.Toast{Kind: string(kind), Message: message})
}

func (s *QueueSink) Play(cue gamecore.Cue) {
	s.enqueue(messages.EventTypeCue, &messages.Cue{Name: string(cue)})
}

func (s *QueueSink) enqueue(eventType string, payload interface{}) {
	event, err := messages.NewEvent(eventType, payload)
	if err != nil {
		log.Error("Failed to build %s event: %v", eventType, err)
		return
	}
	if err := s.events.Enqueue(event); err != nil {
		log.Warn("Dropped %s event: %v", eventType, err)
	}
}
