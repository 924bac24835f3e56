package router

import (
	"github.com/go-chi/chi/v5"

	"tutorials/internal/handlers/tutorial"
)

type DomainHandlers struct {
	Tutorial tutorial.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Tutorial.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
