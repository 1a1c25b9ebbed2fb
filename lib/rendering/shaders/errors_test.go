package shaders

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileErrorNamesStage(t *testing.T) {
	cases := []struct {
		stage Stage
		want  string
		title string
	}{
		{VertexStage, "VERTEX", "Vertex"},
		{FragmentStage, "FRAGMENT", "Fragment"},
	}
	for _, c := range cases {
		err := &CompileError{Stage: c.stage, Log: "0:1(1): error: syntax error\n\x00"}
		msg := err.Error()
		if !strings.Contains(msg, c.want) {
			t.Errorf("%q does not mention %s", msg, c.want)
		}
		if strings.Contains(msg, "\x00") {
			t.Errorf("%q still contains NUL padding", msg)
		}
		if c.stage.Title() != c.title {
			t.Errorf("Title() = %q, want %q", c.stage.Title(), c.title)
		}
	}
}

func TestLinkErrorUnwrapsFromJoin(t *testing.T) {
	joined := errors.Join(&LinkError{Log: "link failed"}, &CompileError{Stage: FragmentStage, Log: "bad"})

	var linkErr *LinkError
	if !errors.As(joined, &linkErr) {
		t.Fatal("LinkError not found in joined error")
	}
	var compileErr *CompileError
	if !errors.As(joined, &compileErr) || compileErr.Stage != FragmentStage {
		t.Fatal("CompileError not found in joined error")
	}
	if !strings.Contains(joined.Error(), "FRAGMENT") {
		t.Errorf("joined error should mention the failing stage: %s", joined)
	}
}
