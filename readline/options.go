package readline

// Option configures a Readline during creation.
type Option func(*Readline)

// WithMultiline enables soft-wrapped multiline editing. Shift+Enter inserts
// a line break; plain Enter still commits.
func WithMultiline() Option {
	return func(r *Readline) {
		r.multiline = true
	}
}

// WithPopup attaches an optional popup context used by the caller to render
// completion suggestions. The widget only holds the reference; it is
// released again by Free.
func WithPopup(popup Context) Option {
	return func(r *Readline) {
		r.popup = popup
	}
}

// WithCompletion sets the completion callback.
func WithCompletion(fn CompleteFunc) Option {
	return func(r *Readline) {
		r.complete = fn
	}
}

// WithCompletionLimit caps the number of candidates requested from the
// completion callback per resolution. Values below one keep
// DefaultCompletionLimit.
func WithCompletionLimit(n int) Option {
	return func(r *Readline) {
		if n > 0 {
			r.completionLimit = n
		}
	}
}

// WithHistoryLimit caps the history store. Values below one keep the
// history package default.
func WithHistoryLimit(n int) Option {
	return func(r *Readline) {
		if n > 0 {
			r.historyLimit = n
		}
	}
}
