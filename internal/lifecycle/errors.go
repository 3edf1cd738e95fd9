package lifecycle

import "errors"

// Typed outcomes of the state machine and its collaborators. Callers match
// them with errors.Is and map them to transport responses; the messages here
// are safe to echo, anything wrapped around them is for logs only.
var (
	// ErrValidation means malformed or missing input that never reached storage
	ErrValidation = errors.New("validation failed")
	// ErrNotFound means the referenced job, application or assignment does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateApplication means the candidate email already applied to the job
	ErrDuplicateApplication = errors.New("duplicate application")
	// ErrAlreadyProcessed means the entity already passed the requested stage
	ErrAlreadyProcessed = errors.New("already processed")
	// ErrPreconditionFailed means a lifecycle guard blocked the transition
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrInsufficientCredits means the company balance cannot cover the posting cost
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrStorageUnavailable means a transient backend failure; the only kind
	// a caller may retry
	ErrStorageUnavailable = errors.New("storage unavailable")
)
