package nav

// Command is one navigation instruction emitted by application logic and
// consumed by the shell. The interface is sealed.
type Command interface {
	isCommand()
}

// Navigate pushes a destination. ClearStack drops the whole back stack
// first, which makes the destination the new root.
type Navigate struct {
	To         Route
	ClearStack bool
}

func (Navigate) isCommand() {}

// Pop removes the current destination from the back stack.
type Pop struct{}

func (Pop) isCommand() {}

// NavigateUp walks up the graph hierarchy, which may leave the app when
// the current destination is the root.
type NavigateUp struct{}

func (NavigateUp) isCommand() {}
