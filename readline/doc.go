// Package readline implements a line-editing widget with history and
// completion for terminal applications.
//
// The widget owns one editable line, a cursor, and a history store. It never
// renders: after every state-changing input it synchronously invokes the
// caller-supplied update callback with a read-only projection of its state,
// and the caller paints the line, the cursor, and any completion popup from
// that projection.
//
// Input is fed through the dispatch chain in label, text, key order (see
// package dispatch). When the user commits the line the projection's Done
// flag is set and the buffer stays intact until the caller acknowledges by
// calling Clear; the widget never clears itself because the caller usually
// wants to read the committed text first.
//
// All operations are synchronous and single-threaded. Callbacks run inline
// on the calling goroutine before Feed returns; calling back into the
// widget from inside a callback is undefined behavior and is the caller's
// obligation to avoid.
package readline
