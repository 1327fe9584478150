package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Access and ownership codes. None of these are transient.
const (
	OK Code = "ok"

	AlreadyTaken    Code = "already_taken"
	AccessDenied    Code = "access_denied"
	ValueOutOfRange Code = "value_out_of_range"
	NotFound        Code = "not_found"

	// Descriptor validation.
	Overlap       Code = "overlap"
	OutOfBounds   Code = "out_of_bounds"
	Misaligned    Code = "misaligned"
	InvalidWidth  Code = "invalid_width"
	Duplicate     Code = "duplicate"
	InvalidConfig Code = "invalid_config"

	// Drivers.
	Timeout Code = "timeout"
	Busy    Code = "busy"

	Error Code = "error" // generic fallback
)

// E keeps an operation name, a message and an optional cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.X) match an *E carrying X.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
