package nn

import (
	"fmt"

	"github.com/trizko/microrunn/internal/engine"
)

// MLP is a multi-layer perceptron: an ordered sequence of layers where
// layer i's output width is layer i+1's input width. All layers apply tanh
// except the last, which stays linear (the usual regression head pattern).
//
// Example:
//
//	init := nn.NewInitializer(42)
//	model := nn.NewMLP(2, []int{3, 3, 1}, init)
//
//	loss := model.Loss(inputs, targets)
//	loss.Backward()
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Grad())
//	}
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts sized to that entry.
func NewMLP(nin int, nouts []int, init *Initializer) *MLP {
	sizes := append([]int{nin}, nouts...)

	layers := make([]*Layer, len(nouts))
	for i := range layers {
		nonLinear := i != len(nouts)-1
		layers[i] = NewLayer(sizes[i], sizes[i+1], nonLinear, init)
	}

	return &MLP{layers: layers}
}

// Forward threads the inputs through every layer in order and returns the
// last layer's outputs.
func (m *MLP) Forward(inputs []*engine.Value) []*engine.Value {
	out := inputs
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Loss computes the sum of squared errors over a batch: for each example,
// (Forward(inputs)[0] - target)², summed across the batch into a single
// graph root. That root is what Backward is invoked on; being a sum of
// squares, its value is never negative.
//
// The batch and target lengths must match; a mismatch is a usage error
// and panics.
func (m *MLP) Loss(inputs [][]*engine.Value, targets []*engine.Value) *engine.Value {
	if len(inputs) != len(targets) {
		panic(fmt.Sprintf("MLP.Loss: %d examples but %d targets", len(inputs), len(targets)))
	}

	total := engine.New(0.0)
	for i, x := range inputs {
		out := m.Forward(x)
		total = total.Add(out[0].Sub(targets[i]).Pow(2.0))
	}
	return total
}

// Parameters returns the parameters of all layers in order.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters to zero.
func (m *MLP) ZeroGrad() {
	for _, l := range m.layers {
		l.ZeroGrad()
	}
}
