package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForOffset_MidpointThresholds(t *testing.T) {
	const h = 800.0

	cases := []struct {
		name   string
		offset float64
		want   Section
	}{
		{"top of page", 0, Home},
		{"just below top", 100, Home},
		{"just before about midpoint", 399, Home},
		{"at about midpoint", 400, About},
		{"about band top", 800, About},
		{"just before projects midpoint", 1199, About},
		{"at projects midpoint", 1200, Projects},
		{"projects band top", 1600, Projects},
		{"at contact midpoint", 2000, Contact},
		{"deep past contact", 9000, Contact},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ForOffset(tc.offset, h))
		})
	}
}

func TestForOffset_Monotonic(t *testing.T) {
	// Section index must never decrease as the offset increases.
	for _, h := range []float64{480, 800, 1080} {
		prev := Home
		for offset := 0.0; offset <= 5*h; offset += h / 16 {
			s := ForOffset(offset, h)
			assert.GreaterOrEqual(t, int(s), int(prev),
				"offset %.0f viewport %.0f", offset, h)
			prev = s
		}
	}
}

func TestForOffset_DegenerateViewport(t *testing.T) {
	assert.Equal(t, Home, ForOffset(1200, 0))
	assert.Equal(t, Home, ForOffset(1200, -10))
}

func TestTargetOffset_LeftInverse(t *testing.T) {
	// path→offset then offset→section recovers the original section.
	const h = 800.0
	for _, s := range All() {
		offset := TargetOffset(s.Path(), h)
		assert.Equal(t, s, ForOffset(offset, h), "section %s", s)
	}
}

func TestForPath_UnrecognizedResolvesHome(t *testing.T) {
	for _, path := range []string{"/nope", "/about/extra", "", "/PROJECTS", "/msd-admin"} {
		assert.Equal(t, Home, ForPath(path), "path %q", path)
		assert.Equal(t, 0.0, TargetOffset(path, 800), "path %q", path)
	}
}

func TestSectionPaths(t *testing.T) {
	assert.Equal(t, "/", Home.Path())
	assert.Equal(t, "/about", About.Path())
	assert.Equal(t, "/projects", Projects.Path())
	assert.Equal(t, "/contact", Contact.Path())
}
