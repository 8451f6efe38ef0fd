package labels

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig is wrapped by all configuration errors, which are returned before
	// any buffer is allocated.
	ErrBadConfig = errors.New("bad labeling configuration")

	// ErrBadConnectivity is returned for unknown connectivity or connectivity that does
	// not match the volume's dimensionality.
	ErrBadConnectivity = fmt.Errorf("%w: connectivity", ErrBadConfig)

	// ErrNilVolume is returned when no volume is given.
	ErrNilVolume = fmt.Errorf("%w: no volume", ErrBadConfig)

	// ErrOperationFailed signals a broken labeling invariant.  The result for the
	// volume should be discarded.
	ErrOperationFailed = errors.New("labeling operation failed")
)
