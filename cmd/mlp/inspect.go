package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/nn"
	"gonum.org/v1/gonum/mat"
)

type inspectOptions struct {
	shape          []int
	inputs         []float64
	target         float64
	activation     string
	output         string
	regularization string
	seed           uint64
	legacy         bool
	asJSON         bool
}

func parseInspect(args []string) (inspectOptions, error) {
	var opts inspectOptions
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	shape := fs.String("shape", "2,3,1", "Comma-separated layer sizes, input first")
	inputs := fs.String("inputs", "", "Comma-separated input values (default all zeros)")
	fs.Float64Var(&opts.target, "target", 1, "Target of the backward pass")
	fs.StringVar(&opts.activation, "activation", "tanh", "Hidden activation: tanh, sigmoid, relu")
	fs.StringVar(&opts.output, "output", "tanh", "Output activation: tanh, sigmoid, relu")
	fs.StringVar(&opts.regularization, "regularization", "none", "Regularization: none, l1, l2")
	fs.Uint64Var(&opts.seed, "seed", 1, "Weight initialization seed")
	fs.BoolVar(&opts.legacy, "legacy-derivative", false, "Pass total input to every activation derivative")
	fs.BoolVar(&opts.asJSON, "json", false, "Print the full snapshot as JSON")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	var err error
	if opts.shape, err = parseList(*shape, strconv.Atoi); err != nil {
		return opts, fmt.Errorf("shape: %w", err)
	}
	if *inputs != "" {
		if opts.inputs, err = parseList(*inputs, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}); err != nil {
			return opts, fmt.Errorf("inputs: %w", err)
		}
	}
	return opts, nil
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Split(s, ",")
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (o inspectOptions) config() (nn.Config, error) {
	cfg := nn.DefaultConfig(o.shape...)
	var err error
	if cfg.Activation, err = nn.ParseActivation(o.activation); err != nil {
		return cfg, err
	}
	if cfg.OutputActivation, err = nn.ParseActivation(o.output); err != nil {
		return cfg, err
	}
	if cfg.Regularization, err = nn.ParseRegularization(o.regularization); err != nil {
		return cfg, err
	}
	cfg.Init = nn.NewUniformInit(o.seed)
	cfg.LegacyDerivative = o.legacy
	return cfg, nil
}

func runInspect(args []string, w io.Writer) error {
	opts, err := parseInspect(args)
	if err != nil {
		return err
	}
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	net, err := nn.New(cfg)
	if err != nil {
		return err
	}

	inputs := opts.inputs
	if inputs == nil {
		inputs = make([]float64, opts.shape[0])
	}
	out, err := net.Forward(inputs)
	if err != nil {
		return err
	}
	net.BackPropagation(opts.target, nn.MeanSquaredError)

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(net.Snapshot())
	}

	fmt.Fprintf(w, "shape %v  output %.6f  target %v  loss %.6f\n",
		net.Shape(), out, opts.target, nn.MeanSquaredError.Error(out, opts.target))
	for l := 1; l < net.NumLayers(); l++ {
		fmt.Fprintf(w, "\nlayer %d\n", l)
		for _, ni := range net.Layer(l) {
			node := net.Node(ni)
			fmt.Fprintf(w, "  node %s  in %.6f  out %.6f  dE/dout %.6f  dE/din %.6f\n",
				node.ID, node.TotalInput, node.Output, node.OutputDerivative, node.InputDerivative)
		}
		fmt.Fprintf(w, "  weights\n%v\n", mat.Formatted(net.WeightMatrix(l), mat.Prefix("    "), mat.Squeeze()))
		fmt.Fprintf(w, "  dE/dw\n%v\n", mat.Formatted(net.GradientMatrix(l), mat.Prefix("    "), mat.Squeeze()))
	}
	fmt.Fprintf(w, "\ngradient norm %.6f\n", net.GradientNorm())
	return nil
}
