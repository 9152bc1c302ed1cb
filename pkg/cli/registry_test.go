package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleCmd struct{}

func (sampleCmd) Description() string { return "sample" }
func (sampleCmd) Handle(*Context) error { return nil }

func TestRegistryRegisterLookup(t *testing.T) {
	r := NewRegistry()
	hit := 0
	r.Register("Sample", func() Command {
		hit++
		return &sampleCmd{}
	})

	for _, name := range []string{"sample", "SAMPLE", "Sample", "sAmPlE"} {
		f, ok := r.Lookup(name)
		require.True(t, ok, "lookup %q", name)
		assert.NotNil(t, f())
	}
	assert.Equal(t, 4, hit)
	assert.Equal(t, []string{"sample"}, r.Names())
}

func TestRegistryLookupMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "Mid"} {
		r.Register(name, func() Command { return sampleCmd{} })
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register("dup", func() Command { return sampleCmd{} })
	assert.Panics(t, func() {
		r.Register("DUP", func() Command { return sampleCmd{} })
	})
}

func TestRegistryInvalidRegistrationPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.Register("", func() Command { return sampleCmd{} }) })
	assert.Panics(t, func() { r.Register("nil", nil) })
}

func TestRegistryHelpIsReserved(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"help", "HELP", "Help"} {
		assert.PanicsWithValue(t, "command help is reserved", func() {
			r.Register(name, func() Command { return sampleCmd{} })
		}, name)
	}
	assert.Equal(t, 0, r.Len())
}
