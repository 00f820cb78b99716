// Package sections owns the partition between continuous scroll offsets and
// the four logical page sections. Both mapping directions (offset→section and
// path→offset) derive from the same partition so they stay mutually inverse
// at the canonical offsets.
package sections

// Section identifies one of the four logical page regions, in scroll order.
type Section int

const (
	Home Section = iota
	About
	Projects
	Contact
)

var names = [...]string{"home", "about", "projects", "contact"}

var paths = [...]string{"/", "/about", "/projects", "/contact"}

func (s Section) String() string {
	if s < Home || s > Contact {
		return names[Home]
	}
	return names[s]
}

// Path returns the canonical route for the section.
func (s Section) Path() string {
	if s < Home || s > Contact {
		return paths[Home]
	}
	return paths[s]
}

// All returns the sections in scroll order.
func All() []Section {
	return []Section{Home, About, Projects, Contact}
}

// ForOffset classifies a vertical scroll offset into a section. A section
// becomes current once the offset passes the midpoint between it and the
// previous one, which keeps the classification stable at exact band
// boundaries. The result is a monotonic step function of offset.
func ForOffset(offset, viewport float64) Section {
	if viewport <= 0 || offset <= 0 {
		return Home
	}

	s := Home
	for i := About; i <= Contact; i++ {
		if offset >= (float64(i)-0.5)*viewport {
			s = i
		}
	}
	return s
}

// ForPath resolves a route to its section. Unrecognized paths resolve to
// Home rather than erroring.
func ForPath(path string) Section {
	for i, p := range paths {
		if p == path {
			return Section(i)
		}
	}
	return Home
}

// TargetOffset returns the scroll offset a route should land on: the top of
// the section's band. Unrecognized paths land on the home offset (0).
func TargetOffset(path string, viewport float64) float64 {
	if viewport <= 0 {
		return 0
	}
	return float64(ForPath(path)) * viewport
}
