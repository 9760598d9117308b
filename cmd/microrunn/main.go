// Package main provides the microrunn CLI.
package main

import (
	"fmt"
	"os"

	"github.com/trizko/microrunn/engine"
	"github.com/trizko/microrunn/nn"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("microrunn %s\n", version)
		return
	}

	// XOR batch: the classic non-linearly-separable toy problem.
	inputs := [][]*engine.Value{
		{engine.New(0.0), engine.New(0.0)},
		{engine.New(0.0), engine.New(1.0)},
		{engine.New(1.0), engine.New(0.0)},
		{engine.New(1.0), engine.New(1.0)},
	}
	targets := []*engine.Value{
		engine.New(0.0),
		engine.New(1.0),
		engine.New(1.0),
		engine.New(0.0),
	}

	model := nn.NewMLP(2, []int{3, 3, 1}, nn.NewInitializer(42))

	loss := model.Loss(inputs, targets)
	loss.Backward()

	fmt.Println(loss)
	fmt.Printf("parameters: %d\n", len(model.Parameters()))
}
