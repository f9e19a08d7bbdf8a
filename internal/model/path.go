package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the final path component.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Dir returns all but the final path component.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Join appends name to p as a child path.
func (p Path) Join(name string) Path {
	return Path(filepath.Join(string(p), name))
}

// Clean returns the shortest equivalent path.
func (p Path) Clean() Path {
	return Path(filepath.Clean(string(p)))
}

func (p Path) String() string {
	return string(p)
}
