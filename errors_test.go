package main

import (
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestClassifyXErrorIgnoresKnownRaces(t *testing.T) {
	cases := []struct {
		name string
		err  xgb.Error
	}{
		{"window", xproto.WindowError{}},
		{"match", xproto.MatchError{}},
		{"drawable", xproto.DrawableError{}},
		{"access", xproto.AccessError{}},
	}
	for _, c := range cases {
		assert.Equal(t, errIgnore, classifyXError(c.err), c.name)
	}
}

func TestClassifyXErrorFatalForUnlisted(t *testing.T) {
	assert.Equal(t, errFatal, classifyXError(xproto.ValueError{}))
}
