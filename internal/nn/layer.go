package nn

import (
	"github.com/trizko/microrunn/internal/engine"
)

// Layer is an ordered collection of neurons sharing the same input width.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
// Every neuron gets its own independently sampled weights.
func NewLayer(nin, nout int, nonLinear bool, init *Initializer) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonLinear, init)
	}
	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron against the same inputs and returns one
// output node per neuron.
func (l *Layer) Forward(inputs []*engine.Value) []*engine.Value {
	outputs := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of all parameters to zero.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}
