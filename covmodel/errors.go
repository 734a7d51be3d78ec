package covmodel

import "errors"

// Sentinel errors for the covmodel package.
// Use errors.Is to check: errors.Is(err, covmodel.ErrArgBounds)
var (
	ErrDim        = errors.New("covmodel: dimension must be at least 1")
	ErrLenScale   = errors.New("covmodel: length scale must be positive")
	ErrRescale    = errors.New("covmodel: rescale factor must be positive")
	ErrVariance   = errors.New("covmodel: variance must be non-negative")
	ErrNugget     = errors.New("covmodel: nugget must be non-negative")
	ErrArgBounds  = errors.New("covmodel: shape parameter out of bounds")
	ErrUnknownArg = errors.New("covmodel: unknown shape parameter")
	ErrPercentile = errors.New("covmodel: percentile must be in (0, 1)")
)
