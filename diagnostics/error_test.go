package diagnostics

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/hdltools/svcore/token"
)

func TestNewfMessage(t *testing.T) {
	f := token.NewFile("x.sv", []byte("0123456789"))
	p := token.NewPos(f, 3)
	err := Newf(ConfigError, p, "unknown key %q", "bogus")
	qt.Assert(t, qt.Equals(err.Error(), `unknown key "bogus"`))
	qt.Assert(t, qt.Equals(err.Kind(), ConfigError))
	format, args := err.Msg()
	qt.Assert(t, qt.Equals(format, "unknown key %q"))
	qt.Assert(t, qt.DeepEquals(args, []any{"bogus"}))
}

func TestListSortAndDedup(t *testing.T) {
	f := token.NewFile("x.sv", []byte("0123456789"))
	var l List
	l.Add(Newf(ConfigError, token.NewPos(f, 5), "dup"))
	l.Add(Newf(ConfigError, token.NewPos(f, 1), "first"))
	l.Add(Newf(ConfigError, token.NewPos(f, 5), "dup"))

	l.RemoveMultiples()
	qt.Assert(t, qt.HasLen(l, 2))
	qt.Assert(t, qt.Equals(l[0].Error(), "first"))
	qt.Assert(t, qt.Equals(l[1].Error(), "dup"))
}

func TestListErrInterface(t *testing.T) {
	var empty List
	qt.Assert(t, qt.IsNil(empty.Err()))

	var l List
	l.Add(Newf(Fatal, token.NoPos, "boom"))
	qt.Assert(t, qt.IsNotNil(l.Err()))
}

func TestWrapfUnwrap(t *testing.T) {
	cause := Newf(IOError, token.NoPos, "open failed")
	wrapped := Wrapf(IOError, cause, token.NoPos, "include %q", "foo.svh")
	qt.Assert(t, qt.Equals(wrapped.Error(), `include "foo.svh"`))
}
