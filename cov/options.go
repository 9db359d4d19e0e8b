package cov

// Defaults for the estimator and rectifier options. These mirror the usual
// estimation setup: project onto block-Toeplitz structure, no ridge term,
// and a 1e-6 eigenvalue floor.
const (
	DefaultEpsilon = 1e-6
)

type options struct {
	toeplitzify bool
	reg         float64
}

func defaultOptions() options {
	return options{toeplitzify: true}
}

// Option configures FromData.
type Option func(*options)

// WithToeplitz controls whether the estimated covariance is projected onto
// block-Toeplitz structure. Enabled by default.
func WithToeplitz(enable bool) Option {
	return func(o *options) { o.toeplitzify = enable }
}

// WithRegularization adds reg times the identity to the estimate, after any
// Toeplitz projection. reg must be non-negative.
func WithRegularization(reg float64) Option {
	return func(o *options) { o.reg = reg }
}

type spectrumOptions struct {
	epsilon float64
	verbose bool
}

func defaultSpectrumOptions() spectrumOptions {
	return spectrumOptions{epsilon: DefaultEpsilon}
}

// SpectrumOption configures RectifySpectrum.
type SpectrumOption func(*spectrumOptions)

// WithEpsilon sets the eigenvalue floor applied when the spectrum is
// corrected. Must be positive.
func WithEpsilon(epsilon float64) SpectrumOption {
	return func(o *spectrumOptions) { o.epsilon = epsilon }
}

// WithVerbose makes RectifySpectrum log a notice whenever it corrects a
// non-PSD matrix.
func WithVerbose(verbose bool) SpectrumOption {
	return func(o *spectrumOptions) { o.verbose = verbose }
}
