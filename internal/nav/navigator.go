package nav

import "sync"

const defaultBuffer = 16

// Navigator carries navigation commands from application logic to a single
// consuming shell. Sends never block the producer: when the consumer lags
// behind the buffer, the oldest command is dropped in favour of the newest.
type Navigator struct {
	mu       sync.Mutex
	commands chan Command
	closed   bool
}

// NewNavigator creates a Navigator with the default command buffer.
func NewNavigator() *Navigator {
	return &Navigator{commands: make(chan Command, defaultBuffer)}
}

// Send enqueues a command. It reports false when the navigator is closed.
func (n *Navigator) Send(cmd Command) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return false
	}
	for {
		select {
		case n.commands <- cmd:
			return true
		default:
		}
		select {
		case <-n.commands:
		default:
		}
	}
}

// NavigateTo is shorthand for sending a Navigate command.
func (n *Navigator) NavigateTo(to Route) bool {
	return n.Send(Navigate{To: to})
}

// ResetTo navigates and clears the back stack, e.g. after login or logout.
func (n *Navigator) ResetTo(to Route) bool {
	return n.Send(Navigate{To: to, ClearStack: true})
}

// Back pops the current destination.
func (n *Navigator) Back() bool {
	return n.Send(Pop{})
}

// Up walks up the navigation hierarchy.
func (n *Navigator) Up() bool {
	return n.Send(NavigateUp{})
}

// Commands exposes the stream the shell ranges over. The channel closes
// when the navigator is closed.
func (n *Navigator) Commands() <-chan Command {
	return n.commands
}

// Close shuts the command stream. Further sends are rejected.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	close(n.commands)
}
