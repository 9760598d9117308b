// Package nn implements feed-forward network building blocks on top of the
// autodiff engine.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Neuron: weighted sum plus optional tanh nonlinearity
//   - Layer: parallel neurons sharing the same input width
//   - MLP: sequential layers with a linear head, plus a sum-of-squares loss
//   - Initializer: seeded uniform weight initialization
//
// Every forward computation is expressed in engine operations, so the result
// of MLP.Loss is a single graph root ready for Backward; parameter gradients
// are then read through the engine's accessors.
package nn

import (
	"github.com/trizko/microrunn/internal/engine"
)

// Module is the base interface for all network components.
//
// Modules expose their trainable parameters as engine leaves so that an
// optimizer can read parameter gradients after a backward pass, and zero
// them between passes.
type Module interface {
	// Parameters returns all trainable parameter nodes of this module,
	// including nested module parameters.
	Parameters() []*engine.Value

	// ZeroGrad resets the gradient of every parameter to zero.
	// Backward accumulates, so this must be called between passes.
	ZeroGrad()
}
