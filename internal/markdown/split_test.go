package markdown

import (
	"strings"
	"testing"
)

func TestSplitPlainTextYieldsSingleProse(t *testing.T) {
	segs := Split("plain text")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Kind != Prose {
		t.Fatal("expected a prose segment")
	}
	if strings.TrimSpace(segs[0].Body) != "plain text" {
		t.Errorf("prose body: got %q", segs[0].Body)
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if segs := Split(""); len(segs) != 0 {
		t.Errorf("empty input: expected no segments, got %d", len(segs))
	}
	if segs := Split("  \n\t\n"); len(segs) != 0 {
		t.Errorf("whitespace input: expected no segments, got %d", len(segs))
	}
}

func TestSplitFenceExtraction(t *testing.T) {
	segs := Split("before\n```python\nprint(1)\n```\nafter")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %#v", len(segs), segs)
	}

	if segs[0].Kind != Prose || strings.TrimSpace(segs[0].Body) != "before" {
		t.Errorf("segment 0: got %#v", segs[0])
	}
	if segs[1].Kind != Code || segs[1].Lang != "python" || segs[1].Body != "print(1)" {
		t.Errorf("segment 1: got %#v", segs[1])
	}
	if segs[2].Kind != Prose || strings.TrimSpace(segs[2].Body) != "after" {
		t.Errorf("segment 2: got %#v", segs[2])
	}
}

func TestSplitUntermFenceStaysProse(t *testing.T) {
	input := "before\n```python\nprint(1)"
	segs := Split(input)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %#v", len(segs), segs)
	}
	if segs[0].Kind != Prose {
		t.Fatal("unterminated fence must not produce a code segment")
	}
	if segs[0].Body != input {
		t.Errorf("unterminated fence must appear verbatim: got %q", segs[0].Body)
	}
}

func TestSplitFenceWithoutLanguage(t *testing.T) {
	segs := Split("```\nraw\n```")
	if len(segs) != 1 || segs[0].Kind != Code {
		t.Fatalf("expected a single code segment, got %#v", segs)
	}
	if segs[0].Lang != "" {
		t.Errorf("expected empty language, got %q", segs[0].Lang)
	}
	if segs[0].Body != "raw" {
		t.Errorf("body: got %q", segs[0].Body)
	}
}

func TestSplitMultipleFencesKeepOrder(t *testing.T) {
	segs := Split("a\n```go\nx := 1\n```\nb\n```sh\nls\n```\nc")
	want := []struct {
		kind Kind
		lang string
	}{
		{Prose, ""}, {Code, "go"}, {Prose, ""}, {Code, "sh"}, {Prose, ""},
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(segs))
	}
	for i, w := range want {
		if segs[i].Kind != w.kind || segs[i].Lang != w.lang {
			t.Errorf("segment %d: got kind=%v lang=%q", i, segs[i].Kind, segs[i].Lang)
		}
	}
}

func TestSplitMultilineBody(t *testing.T) {
	segs := Split("```go\nfunc main() {\n\tprintln(1)\n}\n```")
	if len(segs) != 1 || segs[0].Kind != Code {
		t.Fatalf("got %#v", segs)
	}
	if segs[0].Body != "func main() {\n\tprintln(1)\n}" {
		t.Errorf("body: got %q", segs[0].Body)
	}
}

func TestSplitNestedLookingOpenerIsBodyText(t *testing.T) {
	segs := Split("```python\n```inner\nprint(1)\n```")
	if len(segs) != 1 || segs[0].Kind != Code {
		t.Fatalf("got %#v", segs)
	}
	if segs[0].Body != "```inner\nprint(1)" {
		t.Errorf("body: got %q", segs[0].Body)
	}
}

func TestSplitFenceLineWithNonWordTagIsProse(t *testing.T) {
	// "```foo bar" is not a valid opening fence: the tag allows word
	// characters only.
	input := "```foo bar\ntext\n```"
	segs := Split(input)
	for _, seg := range segs {
		if seg.Kind == Code {
			t.Fatalf("expected no code segment, got %#v", segs)
		}
	}
}

func TestSplitDropsWhitespaceProseBetweenFences(t *testing.T) {
	segs := Split("```go\na\n```\n\n```go\nb\n```")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %#v", len(segs), segs)
	}
	if segs[0].Kind != Code || segs[1].Kind != Code {
		t.Errorf("expected two code segments, got %#v", segs)
	}
}
