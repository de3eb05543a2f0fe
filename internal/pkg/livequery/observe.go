package livequery

import "context"

// Observe starts a live read. It runs query once for the initial snapshot,
// then re-runs it after every notification on topic, pushing each result to
// the returned channel. Delivery coalesces: a slow consumer only ever sees
// the latest snapshot. The stream ends when ctx is cancelled or a re-query
// fails; the channel is closed either way.
func Observe[T any](ctx context.Context, hub *Hub, topic string, query func(context.Context) (T, error)) (<-chan T, error) {
	snapshot, err := query(ctx)
	if err != nil {
		return nil, err
	}

	signals, cancel := hub.Subscribe(topic)
	out := make(chan T, 1)
	out <- snapshot

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				next, err := query(ctx)
				if err != nil {
					return
				}
				push(out, next)
			}
		}
	}()

	return out, nil
}

// push replaces a pending snapshot with the fresh one. Only the Observe
// goroutine sends on out, so draining then sending cannot block.
func push[T any](out chan T, value T) {
	for {
		select {
		case out <- value:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}
