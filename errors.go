package siteprobe

type ErrorCode string

const (
	// ErrCriticalSelectorMiss the container selector matched nothing
	ErrCriticalSelectorMiss ErrorCode = "CriticalSelectorMiss"
	// ErrNonceNotFound nonce script or pattern missing on the homepage
	ErrNonceNotFound ErrorCode = "NonceNotFound"
	// ErrTransport network, timeout or protocol error
	ErrTransport ErrorCode = "Transport"
	// ErrUnexpectedStatus status outside of 2xx
	ErrUnexpectedStatus ErrorCode = "UnexpectedStatus"
	// ErrInvalidDocument a body goquery could not parse
	ErrInvalidDocument ErrorCode = "InvalidDocument"
	// ErrInvalidConfig config file unreadable or failing validation
	ErrInvalidConfig ErrorCode = "InvalidConfig"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
