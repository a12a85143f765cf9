package handler

import (
	"fmt"
	"net/http"
)

// SSEHandler produces the events of one DataStar response. The stream is
// closed when it returns.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return fmt.Errorf("%w: %w", ErrBadRequest, ErrSSENotInitialized)
	}

	base := NewContext(w, r)
	return s.handler(&streamContext{Context: base, sse: base.SSE()})
}

// SSE answers a DataStar request with a sequence of patches and signal updates.
// Non-DataStar requests fail with ErrBadRequest.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(views.Form(state)); err != nil {
//			return err
//		}
//		return stream.SendSignals(map[string]any{"submitting": false})
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
