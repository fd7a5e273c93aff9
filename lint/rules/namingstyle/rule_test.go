package namingstyle

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/hdltools/svcore/internal/svlex"
	"github.com/hdltools/svcore/lint"
)

func runModule(t *testing.T, name, config string) lint.Status {
	t.Helper()
	root, src := svlex.BuildModuleDecl(name, 0)
	d := lint.NewDriver(nil)
	statuses, err := d.RunFile(context.Background(), lint.FileInput{
		Name: "t.sv", Source: []byte(src), Root: root,
	}, []string{Name}, map[string]string{Name: config})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(statuses, 1))
	return statuses[0]
}

func TestLowerSnakeDefaultPasses(t *testing.T) {
	status := runModule(t, "my_module_2", "")
	qt.Assert(t, qt.HasLen(status.Violations, 0))
}

func TestLowerSnakeDefaultFlagsCamel(t *testing.T) {
	status := runModule(t, "MyModule", "")
	qt.Assert(t, qt.HasLen(status.Violations, 1))
	qt.Assert(t, qt.HasLen(status.Violations[0].Autofixes, 1))
	fix := status.Violations[0].Autofixes[0]
	got := string(fix.Apply([]byte("MyModule")))
	qt.Assert(t, qt.Equals(got, "my_module"))
}

func TestUpperCamelStyleFlagsSnake(t *testing.T) {
	status := runModule(t, "my_module", "style=upper_camel")
	qt.Assert(t, qt.HasLen(status.Violations, 1))
	fix := status.Violations[0].Autofixes[0]
	got := string(fix.Apply([]byte("my_module")))
	qt.Assert(t, qt.Equals(got, "MyModule"))
}

func TestConfigureRejectsUnknownStyle(t *testing.T) {
	r := New().(*Rule)
	qt.Assert(t, qt.IsNotNil(r.Configure("style=kebab")))
}
