package router

import (
	"aeron-recovery-service/internal/usecase"
	"aeron-recovery-service/pkg/logger"
)

// SortRouter routes sort keys to the appropriate ordering
type SortRouter struct {
	handlers []usecase.SortHandler
	logger   logger.Logger
}

// NewSortRouter creates a new sort router
func NewSortRouter(logger logger.Logger) *SortRouter {
	return &SortRouter{
		handlers: make([]usecase.SortHandler, 0),
		logger:   logger,
	}
}

// NewDefaultSortRouter creates a router with the dashboard orderings registered
func NewDefaultSortRouter(logger logger.Logger) *SortRouter {
	r := NewSortRouter(logger)
	for _, handler := range usecase.DefaultSortHandlers() {
		r.Register(handler)
	}
	return r
}

// Register registers a handler for its sort keys
func (r *SortRouter) Register(handler usecase.SortHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Debug("Registered sort handler", "handler", handler)
}

// GetHandler returns the first handler serving sortKey, or nil
func (r *SortRouter) GetHandler(sortKey string) usecase.SortHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(sortKey) {
			return handler
		}
	}
	return nil
}
