// Package train drives full-batch training of scalar networks.
//
// A Trainer owns a model, an optimizer and a loss. Each epoch builds a fresh
// autodiff graph over the whole dataset, runs Backward on the loss and lets
// the optimizer update the weights.
package train

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/config"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// ErrUnknownLoss is returned for an unsupported loss name.
var ErrUnknownLoss = errors.New("unknown loss")

// LossFunc maps predictions and targets to a scalar loss node.
type LossFunc func(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error)

// Options configures a Trainer.
type Options struct {
	Epochs   int          // Number of full-batch epochs
	Loss     string       // "mse", "hinge" or "bce"
	Alpha    float64      // L2 regularization strength (0 disables)
	LRDecay  bool         // Linearly decay the learning rate to 10% over the run
	LogEvery int          // Log every n epochs (0 logs only the last)
	Logger   *slog.Logger // Defaults to slog.Default()
}

// EpochStats summarizes one epoch.
type EpochStats struct {
	Epoch    int
	Loss     float64
	Accuracy float64
	LR       float64
}

// Result holds the per-epoch history of a run.
type Result struct {
	History []EpochStats
}

// Final returns the stats of the last completed epoch.
func (r *Result) Final() EpochStats {
	if len(r.History) == 0 {
		return EpochStats{}
	}
	return r.History[len(r.History)-1]
}

// Trainer runs full-batch gradient descent.
type Trainer struct {
	model     nn.Module
	optimizer optim.Optimizer
	loss      LossFunc
	lossName  string
	baseLR    float64
	opts      Options
	logger    *slog.Logger
}

// New creates a Trainer for model using optimizer.
func New(model nn.Module, optimizer optim.Optimizer, opts Options) (*Trainer, error) {
	loss, err := lossByName(opts.Loss)
	if err != nil {
		return nil, err
	}
	if opts.Epochs <= 0 {
		return nil, fmt.Errorf("train: epochs must be positive, got %d", opts.Epochs)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Trainer{
		model:     model,
		optimizer: optimizer,
		loss:      loss,
		lossName:  opts.Loss,
		baseLR:    optimizer.GetLR(),
		opts:      opts,
		logger:    logger,
	}, nil
}

// NewFromConfig builds the model, optimizer and Trainer described by cfg for
// inputs with the given number of features.
func NewFromConfig(cfg config.Config, features int, logger *slog.Logger) (*Trainer, error) {
	act, err := nn.ParseActivation(cfg.Model.Activation)
	if err != nil {
		return nil, err
	}

	sizes := make([]int, 0, len(cfg.Model.Hidden)+2)
	sizes = append(sizes, features)
	sizes = append(sizes, cfg.Model.Hidden...)
	sizes = append(sizes, 1)

	model, err := nn.NewMLP(sizes, act, nn.NewRand(cfg.Training.Seed))
	if err != nil {
		return nil, err
	}

	var optimizer optim.Optimizer
	switch cfg.Training.Optimizer {
	case "adam":
		optimizer = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.Training.LR})
	default:
		optimizer = optim.NewSGD(model.Parameters(), optim.SGDConfig{
			LR:       cfg.Training.LR,
			Momentum: cfg.Training.Momentum,
		})
	}

	return New(model, optimizer, Options{
		Epochs:   cfg.Training.Epochs,
		Loss:     cfg.Training.Loss,
		Alpha:    cfg.Training.Alpha,
		LRDecay:  cfg.Training.LRDecay,
		LogEvery: cfg.Training.LogEvery,
		Logger:   logger,
	})
}

// Model returns the trained model.
func (t *Trainer) Model() nn.Module {
	return t.model
}

// Run trains on ds for the configured number of epochs.
//
// Cancellation is checked between epochs; the partial history is returned
// together with the context error.
func (t *Trainer) Run(ctx context.Context, ds Dataset) (*Result, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	targets := t.targets(ds.Y)
	params := t.model.Parameters()
	result := &Result{History: make([]EpochStats, 0, t.opts.Epochs)}

	t.logger.Info("training started",
		"samples", ds.Len(),
		"parameters", len(params),
		"epochs", t.opts.Epochs,
		"loss", t.lossName,
	)

	for epoch := 0; epoch < t.opts.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			t.logger.Warn("training cancelled", "epoch", epoch, "error", err)
			return result, err
		}

		t.optimizer.ZeroGrad()

		scores, err := t.scores(ds.X)
		if err != nil {
			return result, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		total, err := t.loss(scores, targets)
		if err != nil {
			return result, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if t.opts.Alpha > 0 {
			total = total.Add(nn.L2Penalty(params, t.opts.Alpha))
		}

		total.Backward()

		if t.opts.LRDecay {
			t.optimizer.SetLR(t.baseLR * (1.0 - 0.9*float64(epoch)/float64(t.opts.Epochs)))
		}
		t.optimizer.Step()

		stats := EpochStats{
			Epoch:    epoch,
			Loss:     total.Data(),
			Accuracy: accuracy(scores, ds.Y),
			LR:       t.optimizer.GetLR(),
		}
		result.History = append(result.History, stats)

		last := epoch == t.opts.Epochs-1
		if last || (t.opts.LogEvery > 0 && epoch%t.opts.LogEvery == 0) {
			t.logger.Info("epoch",
				"epoch", epoch,
				"loss", stats.Loss,
				"accuracy", stats.Accuracy,
				"lr", stats.LR,
			)
		} else {
			t.logger.Debug("epoch", "epoch", epoch, "loss", stats.Loss)
		}
	}

	return result, nil
}

// Predict returns the model's raw score for one feature vector.
func (t *Trainer) Predict(x []float64) (float64, error) {
	outs, err := t.model.Forward(nn.Inputs(x...))
	if err != nil {
		return 0, err
	}
	return outs[0].Data(), nil
}

func (t *Trainer) scores(xs [][]float64) ([]*autodiff.Value, error) {
	scores := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		outs, err := t.model.Forward(nn.Inputs(x...))
		if err != nil {
			return nil, err
		}
		scores[i] = outs[0]
	}
	return scores, nil
}

// targets converts {-1, +1} labels to what the loss expects.
func (t *Trainer) targets(labels []float64) []float64 {
	if t.lossName != "bce" {
		return labels
	}
	out := make([]float64, len(labels))
	for i, y := range labels {
		out[i] = (y + 1) / 2
	}
	return out
}

func accuracy(scores []*autodiff.Value, labels []float64) float64 {
	correct := 0
	for i, s := range scores {
		if (s.Data() > 0) == (labels[i] > 0) {
			correct++
		}
	}
	return float64(correct) / float64(len(scores))
}

func lossByName(name string) (LossFunc, error) {
	switch name {
	case "mse":
		return nn.MSELoss, nil
	case "hinge":
		return nn.HingeLoss, nil
	case "bce":
		return nn.BCELoss, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoss, name)
	}
}
