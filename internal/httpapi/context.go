package httpapi

import "context"

// serverBaseCtx couples every handler's work to daemon shutdown: main cancels
// it before draining the listener so in-flight suite loads stop and roll back.
var serverBaseCtx = context.Background()

// SetBaseContext installs the daemon lifetime context. A nil ctx resets to
// Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts derives a context from a that is additionally canceled when b
// is done, so a handler observes both daemon shutdown and client disconnect.
// The cancel func releases the watch and must be called when the handler ends.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(a)
	stop := context.AfterFunc(b, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
