package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrInvalidRole     = fmt.Errorf("role must be CUSTOMER or AGENT")
	ErrInvalidPayload  = fmt.Errorf("payload does not match its event type")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
	ErrEmptySearch     = fmt.Errorf("search query contains no terms")
	ErrGatewayRejected = fmt.Errorf("request rejected at the transport boundary")
)
