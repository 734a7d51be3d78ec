package covmodel

import (
	"fmt"
	"math"
)

// Family is the model-specific part of a covariance model: the
// normalized correlation function :math:`\rho(h)` of the rescaled lag.
// Everything else (variogram, covariance, spectral representations) is
// derived by Model, either from a closed form the family declares
// through one of the optional interfaces below, or from the generic
// numeric fallbacks.
type Family interface {
	Name() string

	// Normalized correlation for a rescaled lag h >= 0.
	// Must satisfy Cor(s, 0) == 1 and decay towards 0.
	Cor(s State, h float64) float64
}

// Rescaler supplies a family-specific default rescale factor so that
// the length scale carries a physical meaning (e.g. integral scale).
// Families without it get a factor of 1.
type Rescaler interface {
	DefaultRescale() float64
}

// OptArgFamily declares the shape-parameter schema of a family.
// Families without it have no shape parameters.
type OptArgFamily interface {
	DefaultOptArgs() []OptArg
}

// OptArgChecker runs model-specific soft validation on top of the
// generic bounds check. Returned issues are typically warnings.
type OptArgChecker interface {
	CheckOptArgs(s State) []Issue
}

// SpectralFamily supplies a closed-form spectral density. The second
// return value reports whether a closed form exists for the state's
// dimension; false routes to the numeric fallback and is distinct from
// a density of zero.
type SpectralFamily interface {
	SpectralDensity(s State, k float64) (float64, bool)
}

// RadCDFFamily supplies a closed-form radial spectral cdf.
type RadCDFFamily interface {
	SpectralRadCDF(s State, r float64) (float64, bool)
}

// RadPPFFamily supplies a closed-form radial spectral ppf.
type RadPPFFamily interface {
	SpectralRadPPF(s State, u float64) (float64, bool)
}

// IntegralFamily supplies a closed-form integral scale.
type IntegralFamily interface {
	IntegralScale(s State) (float64, bool)
}

// State is the read-only snapshot of model state handed to a family.
type State struct {
	Dim         int
	LenRescaled float64
	opt         map[string]float64
}

// NewState builds a state for direct family evaluation, mainly useful
// when implementing families outside this package.
func NewState(dim int, lenRescaled float64, opt map[string]float64) State {
	return State{Dim: dim, LenRescaled: lenRescaled, opt: opt}
}

// Opt returns the current value of a shape parameter.
func (s State) Opt(name string) float64 { return s.opt[name] }

// Config configures a model instance. Zero values produce defaults:
// dimension 3, length scale 1, variance 1 and the family's default
// rescale factor. Shape parameters missing from OptArgs take their
// schema defaults. The JSON form of Config is the parameter set handed
// to external fitting collaborators.
type Config struct {
	Dim      int                `json:"dim"`                // zero → 3
	LenScale float64            `json:"len_scale"`          // zero → 1
	Var      float64            `json:"var"`                // zero → 1
	Nugget   float64            `json:"nugget"`             // zero → 0
	Rescale  float64            `json:"rescale,omitempty"`  // zero → family default
	OptArgs  map[string]float64 `json:"opt_args,omitempty"` // missing → schema defaults
}

// Model is a configured covariance model. All query methods are pure
// functions of the current parameters; concurrent reads are safe,
// mutation is not safe concurrently with anything else.
type Model struct {
	fam         Family
	dim         int
	lenScale    float64
	variance    float64
	nugget      float64
	rescale     float64
	lenRescaled float64
	schema      []OptArg
	opt         map[string]float64
	warnings    []Issue
}

// New creates a model of the given family from cfg.
func New(fam Family, cfg Config) (*Model, error) {
	m := &Model{fam: fam}

	m.dim = cfg.Dim
	if m.dim == 0 {
		m.dim = 3
	}
	if m.dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDim, m.dim)
	}

	m.lenScale = cfg.LenScale
	if m.lenScale == 0 {
		m.lenScale = 1
	}
	if m.lenScale <= 0 || math.IsNaN(m.lenScale) {
		return nil, fmt.Errorf("%w: got %v", ErrLenScale, m.lenScale)
	}

	m.variance = cfg.Var
	if m.variance == 0 {
		m.variance = 1
	}
	if m.variance < 0 || math.IsNaN(m.variance) {
		return nil, fmt.Errorf("%w: got %v", ErrVariance, m.variance)
	}

	m.nugget = cfg.Nugget
	if m.nugget < 0 || math.IsNaN(m.nugget) {
		return nil, fmt.Errorf("%w: got %v", ErrNugget, m.nugget)
	}

	m.rescale = cfg.Rescale
	if m.rescale == 0 {
		m.rescale = defaultRescale(fam)
	}
	if m.rescale <= 0 || math.IsNaN(m.rescale) {
		return nil, fmt.Errorf("%w: got %v", ErrRescale, m.rescale)
	}
	m.lenRescaled = m.lenScale * m.rescale

	if oa, ok := fam.(OptArgFamily); ok {
		m.schema = oa.DefaultOptArgs()
	}
	m.opt = make(map[string]float64, len(m.schema))
	for _, a := range m.schema {
		m.opt[a.Name] = a.Default
	}
	for name, v := range cfg.OptArgs {
		if _, ok := m.opt[name]; !ok {
			return nil, fmt.Errorf("%w: %q for model %s", ErrUnknownArg, name, fam.Name())
		}
		m.opt[name] = v
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func defaultRescale(fam Family) float64 {
	if r, ok := fam.(Rescaler); ok {
		return r.DefaultRescale()
	}
	return 1
}

// Check re-runs the full shape-parameter validation and returns every
// finding: hard bound violations as SeverityError, family-specific
// soft findings (usually SeverityWarning) appended after them.
func (m *Model) Check() []Issue {
	var issues []Issue
	for _, a := range m.schema {
		v := m.opt[a.Name]
		if !a.Bounds.Contains(v) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Arg:      a.Name,
				Message:  fmt.Sprintf("%v outside bounds %s", v, a.Bounds),
			})
		}
	}
	if c, ok := m.fam.(OptArgChecker); ok {
		issues = append(issues, c.CheckOptArgs(m.state())...)
	}
	return issues
}

// validate turns SeverityError findings into an error and retains the
// rest as warnings on the model.
func (m *Model) validate() error {
	issues := m.Check()
	m.warnings = m.warnings[:0]
	for _, is := range issues {
		if is.Severity == SeverityError {
			return fmt.Errorf("%w: %s %s: %s", ErrArgBounds, m.fam.Name(), is.Arg, is.Message)
		}
		m.warnings = append(m.warnings, is)
	}
	return nil
}

func (m *Model) state() State {
	return State{Dim: m.dim, LenRescaled: m.lenRescaled, opt: m.opt}
}

// Accessors.

func (m *Model) Name() string           { return m.fam.Name() }
func (m *Model) Family() Family         { return m.fam }
func (m *Model) Dim() int               { return m.dim }
func (m *Model) LenScale() float64      { return m.lenScale }
func (m *Model) LenRescaled() float64   { return m.lenRescaled }
func (m *Model) RescaleFactor() float64 { return m.rescale }
func (m *Model) Variance() float64      { return m.variance }
func (m *Model) Nugget() float64        { return m.nugget }

// Sill is the variogram limit for large lags, variance + nugget.
func (m *Model) Sill() float64 { return m.variance + m.nugget }

// OptArg returns the current value of a shape parameter.
func (m *Model) OptArg(name string) (float64, bool) {
	v, ok := m.opt[name]
	return v, ok
}

// OptArgs returns a copy of the current shape-parameter mapping.
func (m *Model) OptArgs() map[string]float64 {
	out := make(map[string]float64, len(m.opt))
	for k, v := range m.opt {
		out[k] = v
	}
	return out
}

// Schema returns a copy of the family's shape-parameter schema.
func (m *Model) Schema() []OptArg {
	out := make([]OptArg, len(m.schema))
	copy(out, m.schema)
	return out
}

// Warnings returns the soft findings from the last validation.
func (m *Model) Warnings() []Issue {
	out := make([]Issue, len(m.warnings))
	copy(out, m.warnings)
	return out
}

// Mutators. SetLenScale and SetRescale re-derive the rescaled length;
// SetOptArg re-validates and on a hard failure restores the previous
// value before returning the error.

func (m *Model) SetLenScale(v float64) error {
	if v <= 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: got %v", ErrLenScale, v)
	}
	m.lenScale = v
	m.lenRescaled = m.lenScale * m.rescale
	return nil
}

func (m *Model) SetRescale(v float64) error {
	if v <= 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: got %v", ErrRescale, v)
	}
	m.rescale = v
	m.lenRescaled = m.lenScale * m.rescale
	return nil
}

func (m *Model) SetVariance(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: got %v", ErrVariance, v)
	}
	m.variance = v
	return nil
}

func (m *Model) SetNugget(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: got %v", ErrNugget, v)
	}
	m.nugget = v
	return nil
}

func (m *Model) SetOptArg(name string, v float64) error {
	old, ok := m.opt[name]
	if !ok {
		return fmt.Errorf("%w: %q for model %s", ErrUnknownArg, name, m.fam.Name())
	}
	m.opt[name] = v
	if err := m.validate(); err != nil {
		m.opt[name] = old
		_ = m.validate() // restore warnings for the old value
		return err
	}
	return nil
}

// Queries.

// Cor evaluates the normalized correlation at a rescaled lag.
func (m *Model) Cor(h float64) float64 {
	return m.fam.Cor(m.state(), math.Abs(h))
}

// Correlation evaluates the normalized correlation at a real distance,
// rescaling it first.
func (m *Model) Correlation(r float64) float64 {
	return m.Cor(r / m.lenRescaled)
}

// Variogram is var * (1 - cor(r/len_rescaled)) + nugget.
func (m *Model) Variogram(r float64) float64 {
	return m.variance*(1-m.Correlation(r)) + m.nugget
}

// Covariance is var * cor(r/len_rescaled).
func (m *Model) Covariance(r float64) float64 {
	return m.variance * m.Correlation(r)
}

// SpectralDensity evaluates the spectral density of the normalized
// correlation at a frequency magnitude k; it integrates to 1 over the
// full frequency domain of the model's dimension. Consumers scale by
// Variance for the covariance spectrum.
func (m *Model) SpectralDensity(k float64) float64 {
	k = math.Abs(k)
	if f, ok := m.fam.(SpectralFamily); ok {
		if v, ok := f.SpectralDensity(m.state(), k); ok {
			return v
		}
	}
	return m.densityFallback(k)
}

// SpectralRadCDF evaluates the cdf of the radial frequency
// distribution, clamped to [0, 1].
func (m *Model) SpectralRadCDF(r float64) float64 {
	if math.IsNaN(r) {
		return math.NaN()
	}
	if r <= 0 {
		return 0
	}
	var v float64
	done := false
	if f, ok := m.fam.(RadCDFFamily); ok {
		v, done = f.SpectralRadCDF(m.state(), r)
	}
	if !done {
		v = m.radCDFFallback(r)
	}
	return math.Min(math.Max(v, 0), 1)
}

// SpectralRadPPF inverts the radial cdf for u in [0, 1]; it backs the
// radial frequency sampling of field-synthesis consumers. Without a
// closed form the (possibly closed-form) cdf is inverted numerically.
func (m *Model) SpectralRadPPF(u float64) float64 {
	if f, ok := m.fam.(RadPPFFamily); ok {
		if v, ok := f.SpectralRadPPF(m.state(), u); ok {
			return v
		}
	}
	return m.radPPFFallback(u)
}

// IntegralScale is the integral of the correlation function over the
// distance domain.
func (m *Model) IntegralScale() float64 {
	if f, ok := m.fam.(IntegralFamily); ok {
		if v, ok := f.IntegralScale(m.state()); ok {
			return v
		}
	}
	return m.integralScaleFallback()
}

// Batch variants, elementwise over a slice of inputs. A nil dst
// allocates; otherwise len(dst) must equal the input length.

func (m *Model) Cors(dst, h []float64) []float64 {
	dst = useDst(dst, len(h))
	for i, v := range h {
		dst[i] = m.Cor(v)
	}
	return dst
}

func (m *Model) Variograms(dst, r []float64) []float64 {
	dst = useDst(dst, len(r))
	for i, v := range r {
		dst[i] = m.Variogram(v)
	}
	return dst
}

func (m *Model) Covariances(dst, r []float64) []float64 {
	dst = useDst(dst, len(r))
	for i, v := range r {
		dst[i] = m.Covariance(v)
	}
	return dst
}

func (m *Model) SpectralDensities(dst, k []float64) []float64 {
	dst = useDst(dst, len(k))
	for i, v := range k {
		dst[i] = m.SpectralDensity(v)
	}
	return dst
}

func (m *Model) SpectralRadPPFs(dst, u []float64) []float64 {
	dst = useDst(dst, len(u))
	for i, v := range u {
		dst[i] = m.SpectralRadPPF(v)
	}
	return dst
}

func useDst(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic("covmodel: dst length mismatch")
	}
	return dst
}
