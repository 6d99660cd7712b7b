// Package host is a small dynamically-typed object runtime that user models
// are written against.
//
// Values are reference counted handles (*Value) owned by one Runtime. A value
// returned by a constructor or a call is a new reference that the receiver
// must eventually release with DecRef; arguments passed to calls are borrowed.
// Containers (tuples, lists, objects) hold their own references to the values
// they contain and release them when they are themselves released.
//
// Host functions report failure the way an embedded interpreter does: they
// set the runtime's error indicator (Raise, SetError) and return nil. The
// indicator is a single per-runtime slot with fetch-and-clear semantics
// (Occurred, Fetch, Clear). A raised error carries the host call stack at the
// point of the raise; a Formatter renders it as a traceback.
package host
