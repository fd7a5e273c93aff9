package generatelabel

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/lint"
)

func TestUnlabeledGenerateBlockFlagged(t *testing.T) {
	root, src := svlex.BuildGenerateBlock("", 0)
	d := lint.NewDriver(nil)
	statuses, err := d.RunFile(context.Background(), lint.FileInput{
		Name: "t.sv", Source: []byte(src), Root: root,
	}, []string{Name}, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(statuses, 1))
	qt.Assert(t, qt.HasLen(statuses[0].Violations, 1))
	qt.Assert(t, qt.Equals(statuses[0].Violations[0].Message, message))
}

func TestLabeledGenerateBlockNotFlagged(t *testing.T) {
	root, src := svlex.BuildGenerateBlock("gen_foo", 0)
	d := lint.NewDriver(nil)
	statuses, err := d.RunFile(context.Background(), lint.FileInput{
		Name: "t.sv", Source: []byte(src), Root: root,
	}, []string{Name}, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(statuses, 1))
	qt.Assert(t, qt.HasLen(statuses[0].Violations, 0))
}

func TestConfigureRejectsNonEmpty(t *testing.T) {
	r := New().(*Rule)
	qt.Assert(t, qt.IsNil(r.Configure("")))
	qt.Assert(t, qt.IsNotNil(r.Configure("foo=bar")))
}
