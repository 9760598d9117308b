// Copyright 2025 The Microrunn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/trizko/microrunn/internal/nn"
)

// Module is the base interface for all network components.
type Module = nn.Module

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// passed through tanh.
type Neuron = nn.Neuron

// Layer is an ordered collection of neurons sharing the same input width.
type Layer = nn.Layer

// MLP is a multi-layer perceptron with a linear head.
type MLP = nn.MLP

// Initializer samples weight and bias values from a seeded uniform
// distribution.
type Initializer = nn.Initializer

// NewInitializer creates an Initializer seeded with seed.
func NewInitializer(seed uint64) *Initializer {
	return nn.NewInitializer(seed)
}

// NewNeuron creates a neuron with nin independently sampled weights and one
// bias. If nonLinear is true, Forward applies tanh to the activation.
func NewNeuron(nin int, nonLinear bool, init *Initializer) *Neuron {
	return nn.NewNeuron(nin, nonLinear, init)
}

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int, nonLinear bool, init *Initializer) *Layer {
	return nn.NewLayer(nin, nout, nonLinear, init)
}

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts sized to that entry.
//
// Example:
//
//	init := nn.NewInitializer(42)
//	model := nn.NewMLP(2, []int{3, 3, 1}, init)
//
//	loss := model.Loss(inputs, targets)
//	loss.Backward()
func NewMLP(nin int, nouts []int, init *Initializer) *MLP {
	return nn.NewMLP(nin, nouts, init)
}
