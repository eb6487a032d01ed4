// Package bufferwnd implements a window over a caller-owned byte buffer
// with text and binary (hex) display modes.
//
// The window borrows the buffer for its lifetime: it never resizes it,
// never reallocates it, and never frees it, so the caller's slice stays
// valid throughout. Edits overwrite bytes in place and only happen while
// write-enable is set; with writes disabled every mutating input is a
// silent no-op rather than an error.
//
// Like the readline widget, the window renders nothing. The caller keeps
// polling its display context and forwards input through the InputLabel,
// InputText, InputKey, and InputMouseButton entry points, which follow the
// dispatch-chain contract: the first layer to claim an event ends the
// chain. Layout helpers expose enough geometry for the caller to paint the
// grid and map the cursor back to screen cells.
package bufferwnd
