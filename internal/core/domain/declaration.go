package domain

// Kind tags what a declaration line turned out to be.
type Kind int

const (
	// KindNonPackage is a blank line, a comment or a VCS reference.
	KindNonPackage Kind = iota
	// KindVersioned is a package line carrying an exact pin.
	KindVersioned
	// KindUnversioned is a package line without a pin.
	KindUnversioned
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNonPackage:
		return "non-package"
	case KindVersioned:
		return "versioned"
	case KindUnversioned:
		return "unversioned"
	default:
		return "unknown"
	}
}

// Declaration is the classified form of one line of a declaration file.
type Declaration struct {
	Kind Kind
	// Name is the normalized package name.
	Name string
	// Extras is the extras annotation as written, brackets included.
	Extras string
	// Version is the pinned version token. Only set for KindVersioned.
	Version string
	// Comment is the inline comment with its leading whitespace, if any.
	Comment string
	// InsertAt is the byte offset in the trimmed line where a pin is added
	// to an unversioned declaration: right after the name and extras.
	InsertAt int
}

// IsPackage reports whether the line names a package.
func (d Declaration) IsPackage() bool {
	return d.Kind == KindVersioned || d.Kind == KindUnversioned
}

// HasVersion reports whether the line carries a pin.
func (d Declaration) HasVersion() bool {
	return d.Kind == KindVersioned
}
