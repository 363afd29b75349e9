package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd size 120")
	assert.True(t, ok)
	assert.Equal(t, []string{"size", "120"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("size 120")
	assert.False(t, ok)
	_, ok = Parse("CMD size 1")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var got []string
	var verbose bool
	fs := flag.NewFlagSet("axis", flag.ContinueOnError)
	fs.BoolVar(&verbose, "v", false, "verbose")
	r.Register("axis", "<name>", fs, func(args []string) error {
		got = args
		return nil
	})
	boom := errors.New("boom")
	r.Register("fail", "", nil, func([]string) error { return boom })

	require.NoError(t, r.Execute([]string{"axis", "-v", "rotateXY"}))
	assert.True(t, verbose)
	assert.Equal(t, []string{"rotateXY"}, got)

	assert.ErrorIs(t, r.Execute([]string{"fail"}), boom)
	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.Error(t, r.Execute([]string{"axis", "-unknown"}))
}

func TestHelpIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("speed", "<n>", nil, func([]string) error { return nil })
	r.Register("reset", "", nil, func([]string) error { return nil })
	assert.Equal(t, []string{"reset", "speed"}, r.Names())
	assert.Equal(t, []string{"reset", "speed <n>"}, r.Help())
}
