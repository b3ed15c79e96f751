package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/train"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "micrograd",
		Short: "A scalar reverse-mode autodiff engine",
		Long: `micrograd builds expression graphs over scalar values and computes
gradients with a single backward pass. The demo command prints a small
traced graph; the train command fits an MLP on a toy dataset.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVersionCmd(), newDemoCmd(), newTrainCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "micrograd %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build L = (a*b + c) * f, backpropagate and print the graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			L := buildDemoGraph()
			L.Backward()
			return printGraph(cmd.OutOrStdout(), L)
		},
	}
}

func newTrainCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an MLP classifier on two Gaussian blobs",
		Long: `Trains a multi-layer perceptron built from scalar Values. Settings come
from an optional YAML file layered over the defaults (see internal/config).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			return runTrain(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML training config")
	return cmd
}

func runTrain(cmd *cobra.Command, cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ds := train.TwoBlobs(cfg.Data.Samples, cfg.Data.Spread, cfg.Data.Seed)
	trainer, err := train.NewFromConfig(cfg, ds.Features(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := trainer.Run(ctx, ds)
	if err != nil {
		return err
	}

	final := result.Final()
	fmt.Fprintf(cmd.OutOrStdout(), "epochs=%d loss=%.6f accuracy=%.2f%%\n",
		len(result.History), final.Loss, final.Accuracy*100)
	return nil
}

// buildDemoGraph builds the expression used throughout the docs:
// e = a*b, d = e + c, L = d*f.
func buildDemoGraph() *autodiff.Value {
	a := autodiff.NewLabeled(2, "a")
	b := autodiff.NewLabeled(-3, "b")
	c := autodiff.NewLabeled(10, "c")
	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	f := autodiff.NewLabeled(-2, "f")
	return d.Mul(f).SetLabel("L")
}

// printGraph writes one line per node followed by one line per edge.
func printGraph(w io.Writer, root *autodiff.Value) error {
	nodes, edges := autodiff.Trace(root)

	for _, n := range nodes {
		op := n.Op().String()
		if op == "" {
			op = "leaf"
		}
		if _, err := fmt.Fprintf(w, "%-4s %-5s data=%.4f grad=%.4f\n", n.Label(), op, n.Data(), n.Grad()); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", e.From.Label(), e.To.Label()); err != nil {
			return err
		}
	}
	return nil
}
