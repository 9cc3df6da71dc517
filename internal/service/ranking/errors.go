package ranking

import (
	"fmt"

	"parcel-service/internal/pkg/errs"
)

var ErrInvalidTopN = fmt.Errorf("top n must be positive: %w", errs.ErrValidation)
