package extension

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// RouteRegistrar is a function that registers routes on a Fiber app
type RouteRegistrar func(app *fiber.App)

var (
	routesMu sync.Mutex
	routes   []RouteRegistrar
)

// RegisterRoutes adds a route registrar to be called during app setup
func RegisterRoutes(r RouteRegistrar) {
	routesMu.Lock()
	defer routesMu.Unlock()
	routes = append(routes, r)
}

// ApplyRoutes calls all registered route registrars
func ApplyRoutes(app *fiber.App) {
	routesMu.Lock()
	registrars := append([]RouteRegistrar(nil), routes...)
	routesMu.Unlock()

	for _, r := range registrars {
		r(app)
	}
}
