package component

import "github.com/jakecoffman/cp"

// Velocity is a per-tick displacement fixed at creation.
type Velocity struct {
	V cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
