// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names the feature, reports
// whether it is enabled and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds registered features and loads the enabled ones in registration
// order with LoadAll. The trusted write path and the integrity report are both
// registered this way.
package loader
