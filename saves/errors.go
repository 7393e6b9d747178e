package saves

import "errors"

// Parse errors affect a single folder; the scan drops that folder and
// continues with its siblings.
var (
	ErrNameNotDetected      = errors.New("could not detect character name")
	ErrNotEnoughUnderscores = errors.New("did not find the correct number of underscores, cannot continue with this save")
	ErrStringNotNumber      = errors.New("save number is not a number")
	ErrNonASCIIName         = errors.New("folder name contains non-ascii characters")
)

// Fatal errors stop the whole run.
var (
	ErrReadDirectory = errors.New("unable to read directory")
	ErrDelete        = errors.New("failed to delete")
	ErrNoPath        = errors.New("unable to resolve working directory")
)
