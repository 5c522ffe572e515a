package scenes

import (
	"context"

	"github.com/cbodonnell/flagmaster/client/ui"
	"github.com/cbodonnell/flagmaster/pkg/game"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/queue"
)

const startFailedMessage = "Could not load countries. Press to retry."

// dispatcher applies queued UI events to the session in arrival order.
type dispatcher struct {
	session *game.Session
	events  queue.Queue[messages.Event]
	audio   game.AudioSink

	onToast       func(kind, message string)
	onVerdict     func(countryID int, verdict types.Verdict)
	onHint        func(countryID int, hint string)
	onStartFailed func(err error)
}

func (d *dispatcher) enqueue(eventType string, payload interface{}) {
	event, err := messages.NewEvent(eventType, payload)
	if err != nil {
		log.Error("Failed to build %s event: %v", eventType, err)
		return
	}
	if err := d.events.Enqueue(event); err != nil {
		log.Warn("Dropped %s event: %v", eventType, err)
	}
}

// startAsync begins a new round without blocking the update loop. With
// switchMode the session's mode change path is used instead.
func (d *dispatcher) startAsync(mode types.Mode, switchMode bool) {
	go func() {
		ctx := context.Background()
		var err error
		if switchMode {
			err = d.session.SetMode(ctx, mode)
		} else {
			err = d.session.StartNewGame(ctx, mode)
		}
		if err != nil {
			log.Error("Failed to start %s game: %v", mode, err)
			d.enqueue(messages.EventTypeStartFailed, &messages.Toast{Kind: string(game.NotificationError), Message: startFailedMessage})
		}
	}()
}

// drain handles every pending event.
func (d *dispatcher) drain() {
	for _, event := range d.events.ReadAllMessages() {
		if err := d.handle(event); err != nil {
			log.Error("Failed to handle %s event: %v", event.Type, err)
		}
	}
}

func (d *dispatcher) handle(event messages.Event) error {
	switch event.Type {
	case messages.EventTypeToast:
		toast := &messages.Toast{}
		if err := event.Decode(toast); err != nil {
			return err
		}
		d.onToast(toast.Kind, toast.Message)
	case messages.EventTypeCue:
		cue := &messages.Cue{}
		if err := event.Decode(cue); err != nil {
			return err
		}
		d.audio.Play(game.Cue(cue.Name))
	case messages.EventTypeSubmitAnswer:
		submit := &messages.SubmitAnswer{}
		if err := event.Decode(submit); err != nil {
			return err
		}
		if verdict, ok := d.session.SubmitAnswer(submit.CountryID, submit.Text); ok {
			d.onVerdict(submit.CountryID, verdict)
		}
	case messages.EventTypeHint:
		ref := &messages.CardRef{}
		if err := event.Decode(ref); err != nil {
			return err
		}
		if hint, ok := d.session.Hint(ref.Key.CountryID); ok {
			d.onHint(ref.Key.CountryID, hint)
		}
	case messages.EventTypeScratchComplete:
		ref := &messages.CardRef{}
		if err := event.Decode(ref); err != nil {
			return err
		}
		d.session.MarkRevealed(ref.Key)
	case messages.EventTypeNewGame:
		change := &messages.ChangeMode{}
		if err := event.Decode(change); err != nil {
			return err
		}
		d.startAsync(change.Mode, false)
	case messages.EventTypeChangeMode:
		change := &messages.ChangeMode{}
		if err := event.Decode(change); err != nil {
			return err
		}
		d.startAsync(change.Mode, true)
	case messages.EventTypeEndGame:
		d.session.EndGame()
	case messages.EventTypeStartFailed:
		toast := &messages.Toast{}
		if err := event.Decode(toast); err != nil {
			return err
		}
		d.onToast(toast.Kind, toast.Message)
		d.onStartFailed(&ui.ActionableError{Message: toast.Message})
	default:
		log.Warn("Received unexpected event type: %s", event.Type)
	}
	return nil
}
