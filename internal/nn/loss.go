package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
func MSELoss(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	if err := checkPair("mse", len(predictions), len(targets)); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.SubScalar(targets[i]).Pow(2)
	}

	return mean(terms), nil
}

// HingeLoss computes the max-margin loss for labels in {-1, +1}.
//
// Loss = mean(relu(1 - yᵢ·sᵢ))
func HingeLoss(scores []*autodiff.Value, labels []float64) (*autodiff.Value, error) {
	if err := checkPair("hinge", len(scores), len(labels)); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Value, len(scores))
	for i, s := range scores {
		terms[i] = s.MulScalar(-labels[i]).AddScalar(1).ReLU()
	}

	return mean(terms), nil
}

// BCELoss computes binary cross-entropy on logits for labels in {0, 1}.
//
// Loss = -mean(y·log σ(z) + (1-y)·log(1 - σ(z)))
//
// There is no clamping; logits far from 0 make σ saturate and the log
// diverge.
func BCELoss(logits []*autodiff.Value, labels []float64) (*autodiff.Value, error) {
	if err := checkPair("bce", len(logits), len(labels)); err != nil {
		return nil, err
	}

	terms := make([]*autodiff.Value, len(logits))
	for i, z := range logits {
		y := labels[i]
		p := z.Sigmoid()
		pos := p.Log().MulScalar(y)
		neg := p.Neg().AddScalar(1).Log().MulScalar(1 - y)
		terms[i] = pos.Add(neg)
	}

	return mean(terms).Neg(), nil
}

// L2Penalty returns alpha · Σ p² over the parameters' current leaves.
func L2Penalty(params []*Parameter, alpha float64) *autodiff.Value {
	terms := make([]*autodiff.Value, len(params))
	for i, p := range params {
		v := p.Value()
		terms[i] = v.Mul(v)
	}
	return autodiff.Sum(terms...).MulScalar(alpha)
}

func mean(terms []*autodiff.Value) *autodiff.Value {
	return autodiff.Sum(terms...).MulScalar(1 / float64(len(terms)))
}

func checkPair(name string, n, m int) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}
	if n != m {
		return fmt.Errorf("%s: %d predictions, %d targets: %w", name, n, m, ErrLengthMismatch)
	}
	return nil
}
