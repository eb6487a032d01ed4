// Package dispatch implements the layered input-event chain shared by the
// tuikit widgets.
//
// Raw terminal input arrives as typed events: a symbolic Label, a run of
// UTF-8 Text, a raw Key, or a MouseButton. A widget offers each event to an
// ordered chain of handlers. Each handler either claims the event (Handled)
// or defers to the next one (Pass). The chain stops at the first handler
// that claims the event; an event that falls through the final handler is
// returned to the caller as Pass, typically to be forwarded to whichever
// widget holds input focus next.
//
// Ordering is a hard invariant. A label alias such as "paste" must never be
// re-interpreted as literal text once the label layer has consumed it, so
// widgets always register their layers in label, text, key order.
package dispatch
