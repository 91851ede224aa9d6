// Package gateway wraps each use case behind a uniform request/response
// pipeline. A Gateway runs an ordered middleware chain that ends in a
// processor; the processor is the only step that talks to the application
// services.
package gateway

import "context"

// Handler processes one request.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware wraps the rest of the chain.
type Middleware[Req, Resp any] func(ctx context.Context, req Req, next Handler[Req, Resp]) (Resp, error)

// Gateway is one use case behind its middleware chain.
type Gateway[Req, Resp any] struct {
	name    string
	handler Handler[Req, Resp]
}

// New builds a gateway. Middlewares run in the given order, the first one
// outermost, and processor runs last.
func New[Req, Resp any](name string, processor Handler[Req, Resp], middlewares ...Middleware[Req, Resp]) *Gateway[Req, Resp] {
	h := processor
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = chain(middlewares[i], h)
	}
	return &Gateway[Req, Resp]{name: name, handler: h}
}

func chain[Req, Resp any](m Middleware[Req, Resp], next Handler[Req, Resp]) Handler[Req, Resp] {
	return func(ctx context.Context, req Req) (Resp, error) {
		return m(ctx, req, next)
	}
}

// Name returns the use case name.
func (g *Gateway[Req, Resp]) Name() string {
	return g.name
}

// Handle runs the request through the chain.
func (g *Gateway[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return g.handler(ctx, req)
}

// Standard returns the default chain: Logger, Metrics, ErrorHandler,
// Translation and Validation. A nil translator skips translation.
func Standard[Req, Resp any](name string, translator Translator) []Middleware[Req, Resp] {
	mws := []Middleware[Req, Resp]{
		Logger[Req, Resp](name),
		Metrics[Req, Resp](name),
		ErrorHandler[Req, Resp](),
	}
	if translator != nil {
		mws = append(mws, Translation[Req, Resp](translator))
	}
	return append(mws, Validation[Req, Resp]())
}

// NewUseCase builds a gateway with the Standard chain.
func NewUseCase[Req, Resp any](name string, translator Translator, processor Handler[Req, Resp]) *Gateway[Req, Resp] {
	return New(name, processor, Standard[Req, Resp](name, translator)...)
}
