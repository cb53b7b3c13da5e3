package util

import (
	"fmt"

	"github.com/custodia-labs/apikit/internal/core/domain"
)

var errNotTerminal = fmt.Errorf("not a terminal: %w", domain.ErrInvalidInput)
