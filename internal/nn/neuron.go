package nn

import (
	"fmt"

	"github.com/trizko/microrunn/internal/engine"
)

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// passed through tanh.
//
// Weights and bias are engine leaves created at construction from the
// Initializer; they participate in every graph the neuron builds, so after
// a backward pass each holds its accumulated gradient.
type Neuron struct {
	weights   []*engine.Value
	bias      *engine.Value
	nonLinear bool
}

// NewNeuron creates a neuron with nin independently sampled weights and one
// bias. If nonLinear is true, Forward applies tanh to the activation.
func NewNeuron(nin int, nonLinear bool, init *Initializer) *Neuron {
	weights := make([]*engine.Value, nin)
	for i := range weights {
		weights[i] = engine.New(init.Sample())
	}

	return &Neuron{
		weights:   weights,
		bias:      engine.New(init.Sample()),
		nonLinear: nonLinear,
	}
}

// Forward computes bias + Σ weight_i * input_i via engine operations,
// applying tanh if the neuron is nonlinear, and returns the resulting node.
//
// The number of inputs must equal the weight count; a mismatch is a usage
// error and panics.
func (n *Neuron) Forward(inputs []*engine.Value) *engine.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}

	if n.nonLinear {
		return act.Tanh()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// ZeroGrad resets the gradients of all parameters to zero.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}
