package render

// WarnSink receives warnings the engine emits while degrading gracefully:
// unresolved title references, deprecated config forms, bad color tokens.
// The engine never fails because of these; it reports them and keeps going.
type WarnSink interface {
	Warnf(format string, args ...any)
}

// NopSink discards every warning.
type NopSink struct{}

// Warnf implements WarnSink.
func (NopSink) Warnf(string, ...any) {}
