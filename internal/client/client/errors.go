package client

import (
	"errors"

	"github.com/dmitrijs2005/loandesk/internal/common"
)

var (
	// ErrNotFound wraps common.ErrorNotFound so callers may match either.
	ErrNotFound          = common.ErrorNotFound
	ErrInvalidData       = errors.New("invalid data")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownAction     = errors.New("unknown action")
)
