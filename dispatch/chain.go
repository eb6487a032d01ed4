package dispatch

// Result reports what a handler did with an event.
type Result uint8

const (
	// Pass means the handler did not claim the event and the next layer
	// (or the caller, after the final layer) should see it.
	Pass Result = iota
	// Handled means the handler claimed the event. No later layer
	// observes it.
	Handled
)

// String returns the name of the result.
func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "pass"
}

// Handler is one layer of an input chain.
type Handler interface {
	HandleInput(Event) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(Event) Result

// HandleInput implements Handler.
func (f HandlerFunc) HandleInput(ev Event) Result { return f(ev) }

// Chain is an ordered sequence of handlers. Offer walks the layers in
// registration order and stops at the first one that claims the event.
// The zero value is an empty chain that passes everything through.
type Chain struct {
	layers []Handler
}

// NewChain builds a chain from layers in offer order.
func NewChain(layers ...Handler) *Chain {
	return &Chain{layers: layers}
}

// Append adds a layer after all existing ones.
func (c *Chain) Append(h Handler) {
	c.layers = append(c.layers, h)
}

// Len returns the number of layers.
func (c *Chain) Len() int { return len(c.layers) }

// Offer presents the event to each layer in order. It returns Handled as
// soon as a layer claims the event; later layers never observe it. If every
// layer passes, Offer returns Pass and the event is the caller's
// responsibility.
func (c *Chain) Offer(ev Event) Result {
	for _, layer := range c.layers {
		if layer.HandleInput(ev) == Handled {
			return Handled
		}
	}
	return Pass
}
