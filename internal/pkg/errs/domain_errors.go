package errs

// Failure classes of a pricing round trip. Results carry one of these marked
// on their error so callers can branch with Is.
var (
	ErrTimeout    = New("pricing request timed out")
	ErrProtocol   = New("pricing backend returned an error status")
	ErrConnection = New("pricing backend unreachable")
	ErrParse      = New("malformed pricing payload")
)
