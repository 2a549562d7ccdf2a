package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by repository operations when the requested
// record does not exist. All backends wrap this sentinel so callers can
// detect the condition with errors.Is regardless of backend.
var ErrNotFound = goerr.New("record not found")
