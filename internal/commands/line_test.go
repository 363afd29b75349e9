package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEditing(t *testing.T) {
	var l Line
	l.Insert("cmd sizé")
	l.Backspace()
	assert.Equal(t, "cmd siz", l.Text())

	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	assert.Equal(t, "", l.Text())
}

func TestLineHistory(t *testing.T) {
	var l Line
	for _, s := range []string{"cmd size 100", "cmd size 100", "  ", "cmd reset"} {
		l.Insert(s)
		l.Submit()
	}

	l.Prev()
	assert.Equal(t, "cmd reset", l.Text())
	l.Prev()
	assert.Equal(t, "cmd size 100", l.Text())
	l.Prev()
	assert.Equal(t, "cmd size 100", l.Text(), "duplicates and blanks are not recorded")

	l.Next()
	assert.Equal(t, "cmd reset", l.Text())
	l.Next()
	assert.Equal(t, "", l.Text())
	l.Next()
	assert.Equal(t, "", l.Text())
}

func TestLineComplete(t *testing.T) {
	names := []string{"size", "spacing", "speed", "status"}
	var l Line

	l.Insert("cmd si")
	assert.Equal(t, []string{"size"}, l.Complete(names))
	assert.Equal(t, "cmd size ", l.Text())

	l.Submit()
	l.Insert("cmd sp")
	assert.Equal(t, []string{"spacing", "speed"}, l.Complete(names))
	assert.Equal(t, "cmd sp", l.Text())

	l.Submit()
	l.Insert("cmd s")
	assert.Len(t, l.Complete(names), 4)
	assert.Equal(t, "cmd s", l.Text())

	l.Submit()
	l.Insert("size")
	assert.Nil(t, l.Complete(names))
	assert.Equal(t, "size", l.Text())
}
