package reg

// Access is the permission a register or field grants to software.
type Access uint8

const (
	// ReadWrite is the zero value, matching the SVD default.
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) CanRead() bool  { return a != WriteOnly }
func (a Access) CanWrite() bool { return a != ReadOnly }

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	}
	return "invalid"
}

// Intersect returns the access permitted by both a and b. ok is false when
// nothing is left.
func (a Access) Intersect(b Access) (Access, bool) {
	r := a.CanRead() && b.CanRead()
	w := a.CanWrite() && b.CanWrite()
	switch {
	case r && w:
		return ReadWrite, true
	case r:
		return ReadOnly, true
	case w:
		return WriteOnly, true
	}
	return 0, false
}

// ParseAccess accepts the SVD access spellings.
func ParseAccess(s string) (Access, bool) {
	switch s {
	case "read-only":
		return ReadOnly, true
	case "write-only", "writeOnce":
		return WriteOnly, true
	case "read-write", "read-writeOnce":
		return ReadWrite, true
	}
	return 0, false
}
