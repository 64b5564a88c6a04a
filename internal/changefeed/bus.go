package changefeed

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const Topic = "row_changes"

// Bus is the in-process change event bus. Services publish row changes
// after each committed mutation; the dispatcher fans them out to
// websocket clients and NATS.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus(pubSub *gochannel.GoChannel) *Bus {
	return &Bus{pubSub: pubSub}
}

// Publish emits a change event. Failures are returned but callers treat
// them as non-fatal: the mutation itself has already committed.
func (b *Bus) Publish(table string, action Action, row map[string]interface{}) error {
	ev := ChangeEvent{
		Table:      table,
		Action:     action,
		Row:        row,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := ev.Marshal()
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubSub.Publish(Topic, msg)
}

// Subscribe returns the raw message stream for the dispatcher.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, Topic)
}
