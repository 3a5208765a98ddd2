package interval

import "errors"

// ErrInvalidInterval indicates a constructor was called with start > end
// where neither bound is NaN (NaN/NaN is the accepted empty marker).
var ErrInvalidInterval = errors.New("interval: start must be <= end")
