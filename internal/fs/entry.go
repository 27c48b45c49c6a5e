package fs

import "strings"

// Kind classifies an entry from its permission token.
type Kind int

const (
	KindRegular Kind = iota
	KindDirectory
	KindExecutable
	KindSymlink
)

// String returns the label shown in the info bar.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "DIRECTORY"
	case KindExecutable:
		return "EXECUTABLE"
	case KindSymlink:
		return "SYMLINK"
	default:
		return "REGULAR"
	}
}

// ParentRef is the name `ls -F -a` prints for the parent directory.
const ParentRef = "../"

// Entry represents a single line of the long listing.
type Entry struct {
	FullLine    string
	Prefix      string
	Name        string
	Permissions string
	Kind        Kind
}

// Listing is the ordered set of entries for one directory load.
type Listing []Entry

// classify reads only the permission token.
func classify(perm string) Kind {
	if perm == "" {
		return KindRegular
	}
	switch perm[0] {
	case 'd':
		return KindDirectory
	case 'l':
		return KindSymlink
	case '-':
		if strings.ContainsRune(perm, 'x') {
			return KindExecutable
		}
	}
	return KindRegular
}

// IsDir reports whether the entry can be entered.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory || e.IsParentRef()
}

// IsParentRef reports whether the entry is the parent-directory reference.
func (e Entry) IsParentRef() bool {
	return e.Name == ParentRef || e.Name == ".."
}

// CleanName returns the on-disk name with the ls -F decoration removed.
func (e Entry) CleanName() string {
	name := e.Name
	switch e.Kind {
	case KindExecutable:
		return strings.TrimSuffix(name, "*")
	case KindDirectory:
		if name == "/" {
			return name
		}
		return strings.TrimSuffix(name, "/")
	case KindSymlink:
		if idx := strings.Index(name, " -> "); idx >= 0 {
			name = name[:idx]
		}
		return strings.TrimSuffix(name, "@")
	}

	if e.Permissions != "" {
		switch e.Permissions[0] {
		case '-':
			// ls -F marks any execute bit, including the ones hidden
			// behind a lower-case setuid, setgid or sticky letter.
			if strings.ContainsAny(e.Permissions[1:], "xst") {
				return strings.TrimSuffix(name, "*")
			}
		case 'p':
			return strings.TrimSuffix(name, "|")
		case 's':
			return strings.TrimSuffix(name, "=")
		}
	}
	return name
}
