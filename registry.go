package dnd

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

const handlerPrefix = "handler-"

// CallbackHandle allows removing a registered callback.
// Remove may be called any number of times.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
}

// CompletionFunc finalizes a released gesture for one sortable group.
type CompletionFunc func(Completion) error

type completionHandler struct {
	id       string
	groupKey string
	fn       CompletionFunc
}

// Registry maps each group key to the single completion handler that should
// run when a drag belonging to that group is released. Registering under a
// key replaces whatever was there, so repeated re-registration never stacks
// handlers.
type Registry struct {
	handlers map[string]completionHandler
	log      *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = discardLogger()
	}
	return &Registry{handlers: make(map[string]completionHandler), log: log}
}

// Register installs fn as the completion handler for groupKey, replacing any
// existing one. The returned handle removes fn only while it is still the
// current handler for the key.
func (r *Registry) Register(groupKey string, fn CompletionFunc) CallbackHandle {
	delete(r.handlers, groupKey)
	h := completionHandler{
		id:       handlerPrefix + uuid.NewString(),
		groupKey: groupKey,
		fn:       fn,
	}
	r.handlers[groupKey] = h
	r.log.Debug("registered completion handler", "group", groupKey, "handler", h.id)
	return CallbackHandle{remove: func() {
		if cur, ok := r.handlers[groupKey]; ok && cur.id == h.id {
			delete(r.handlers, groupKey)
		}
	}}
}

// Unregister removes the handler for groupKey, if any.
func (r *Registry) Unregister(groupKey string) {
	delete(r.handlers, groupKey)
}

// Has reports whether a handler is registered for groupKey.
func (r *Registry) Has(groupKey string) bool {
	_, ok := r.handlers[groupKey]
	return ok
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// RunHandlers synchronously invokes the handler registered for groupKey and
// returns how many ran (0 or 1). Errors and panics raised by the handler are
// logged and swallowed.
func (r *Registry) RunHandlers(groupKey string, c Completion) int {
	if groupKey == "" {
		return 0
	}
	h, ok := r.handlers[groupKey]
	if !ok {
		return 0
	}
	if err := h.run(c); err != nil {
		r.log.Error("completion handler failed", "group", groupKey, "handler", h.id, "err", err)
	}
	return 1
}

func (h completionHandler) run(c Completion) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	if h.fn == nil {
		return nil
	}
	return h.fn(c)
}
