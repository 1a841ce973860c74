package grad

import (
	"errors"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/qprop/coeff"
)

// ErrNilLoss indicates a nil loss function.
var ErrNilLoss = errors.New("grad: nil loss function")

// Forward evaluates loss once on forward-mode dual variables seeded from
// params and returns the loss value together with its gradient.
//
// The loss must build its scalar exclusively through coeff.Dual arithmetic
// (observable coefficients via coeff.Const, angles taken from the supplied
// variables) so the chain rule flows end to end.
func Forward(loss func([]coeff.Dual) coeff.Dual, params []float64) (float64, []float64, error) {
	if loss == nil {
		return 0, nil, ErrNilLoss
	}

	out := loss(coeff.Variables(params))

	return out.X, out.Gradient(len(params)), nil
}

// FiniteDifference estimates the gradient of loss at params by symmetric
// central differences. A non-positive step selects gonum's default.
func FiniteDifference(loss func([]float64) float64, params []float64, step float64) ([]float64, error) {
	if loss == nil {
		return nil, ErrNilLoss
	}

	settings := &fd.Settings{Formula: fd.Central}
	if step > 0 {
		settings.Step = step
	}
	dst := make([]float64, len(params))
	fd.Gradient(dst, loss, params, settings)

	return dst, nil
}
