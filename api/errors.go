package api

import "fmt"

type ErrorKind int

const (
	ConnectionFailed ErrorKind = iota
	QueryFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "connection failed"
	case QueryFailed:
		return "query failed"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every data-access operation. Msg is the driver's
// message, shown to the user unchanged.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Msg: err.Error(), Err: err}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
