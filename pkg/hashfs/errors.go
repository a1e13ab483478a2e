package hashfs

import (
	"errors"

	"github.com/wuxler/ruafs/pkg/errdefs"
)

// ErrConfig is the base error for invalid or missing storage configuration.
// It is classified as an errdefs.ErrInvalidParameter so callers can match
// either sentinel.
var ErrConfig = errdefs.NewE(errdefs.ErrInvalidParameter, errors.New("invalid storage configuration"))
