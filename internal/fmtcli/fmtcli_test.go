package fmtcli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hdltools/svcore/partition"
	"github.com/hdltools/svcore/token"
)

func tok(kind token.Kind, begin, end int) partition.PreFormatToken {
	return partition.PreFormatToken{Tok: token.Token{Kind: kind, Span: token.Span{Begin: begin, End: end}}, SpacesRequired: 1}
}

func fixture() ([]byte, *partition.Tree, []partition.PreFormatToken) {
	// "module m ;" (length 10), split as two leaves: "module m" and ";"
	src := []byte("module m ;")
	tokens := []partition.PreFormatToken{
		tok(token.Identifier, 0, 6),
		tok(token.Identifier, 7, 8),
		tok(token.Invalid, 9, 10),
	}
	tokens[0].SpacesRequired = 0

	header := partition.NewLeaf(partition.UnwrappedLine{
		Tokens:          partition.TokenRange{Begin: 0, End: 2},
		PartitionPolicy: partition.AlwaysExpand,
	})
	semi := partition.NewLeaf(partition.UnwrappedLine{
		Tokens:          partition.TokenRange{Begin: 2, End: 3},
		PartitionPolicy: partition.AlwaysExpand,
	})
	root, err := partition.NewInterior(header, semi)
	if err != nil {
		panic(err)
	}
	return src, root, tokens
}

func TestRunFormatsToStdout(t *testing.T) {
	src, root, tokens := fixture()
	Unwrap = func(_ string, s []byte) (*partition.Tree, []partition.PreFormatToken, error) {
		return root, tokens, nil
	}
	t.Cleanup(func() {
		Unwrap = func(name string, src []byte) (*partition.Tree, []partition.PreFormatToken, error) {
			return nil, nil, nil
		}
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sv")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(&out, path, false, ""); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected formatted output, got none")
	}
}

func TestRunInplaceRewritesFile(t *testing.T) {
	src, root, tokens := fixture()
	Unwrap = func(_ string, s []byte) (*partition.Tree, []partition.PreFormatToken, error) {
		return root, tokens, nil
	}
	t.Cleanup(func() {
		Unwrap = func(name string, src []byte) (*partition.Tree, []partition.PreFormatToken, error) {
			return nil, nil, nil
		}
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sv")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(&out, path, true, ""); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output on --inplace, got %q", out.String())
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected the file to contain formatted text")
	}
}

func TestRunWithoutUnwrapperIsAnError(t *testing.T) {
	Unwrap = func(name string, src []byte) (*partition.Tree, []partition.PreFormatToken, error) {
		return nil, nil, os.ErrInvalid
	}
	t.Cleanup(func() {
		Unwrap = func(name string, src []byte) (*partition.Tree, []partition.PreFormatToken, error) {
			return nil, nil, nil
		}
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.sv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(&out, path, false, ""); err == nil {
		t.Fatal("expected an error when the unwrapper fails")
	}
}
