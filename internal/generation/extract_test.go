package generation

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtract_DirectObject(t *testing.T) {
	doc, err := Extract(`{"grammar":"ok"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `{"grammar":"ok"}`)
}

func TestExtract_DirectArray(t *testing.T) {
	doc, err := Extract(`  [1, 2, 3]  `)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `[1,2,3]`)
}

func TestExtract_FencedWithLanguageTag(t *testing.T) {
	doc, err := Extract("```json\n{\"grammar\":\"ok\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `{"grammar":"ok"}`)
}

func TestExtract_FencedWithoutLanguageTag(t *testing.T) {
	doc, err := Extract("```\n[{\"question\":\"q\"}]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `[{"question":"q"}]`)
}

func TestExtract_ObjectEmbeddedInProse(t *testing.T) {
	raw := "Sure! Here is the lesson you asked for:\n{\"title\":\"Greetings\"}\nLet me know if you need anything else."
	doc, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `{"title":"Greetings"}`)
}

func TestExtract_ArrayEmbeddedInProse(t *testing.T) {
	raw := "Here are the questions: [\"a\",\"b\"] enjoy!"
	doc, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `["a","b"]`)
}

func TestExtract_FencedInsideProse(t *testing.T) {
	raw := "Here you go:\n```json\n{\"a\":1}\n```\nDone."
	doc, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `{"a":1}`)
}

func TestExtract_NoJSON(t *testing.T) {
	for _, raw := range []string{
		"",
		"I'm sorry, I can't help with that.",
		"{broken json",
		"```json\nnot json at all\n```",
		`"just a bare string"`,
		"42",
	} {
		if _, err := Extract(raw); !errors.Is(err, ErrExtraction) {
			t.Fatalf("Extract(%q): expected ErrExtraction, got %v", raw, err)
		}
	}
}

func TestExtract_MalformedObjectFallsThroughToArray(t *testing.T) {
	// The object span {oops} is invalid, but the array span parses.
	raw := `prefix {oops} middle ["x"] suffix`
	doc, err := Extract(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertJSONEqual(t, doc, `["x"]`)
}

func assertJSONEqual(t *testing.T, got json.RawMessage, want string) {
	t.Helper()
	var g, w any
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("got is not valid JSON: %v (%s)", err, got)
	}
	if err := json.Unmarshal([]byte(want), &w); err != nil {
		t.Fatalf("want is not valid JSON: %v", err)
	}
	gb, _ := json.Marshal(g)
	wb, _ := json.Marshal(w)
	if string(gb) != string(wb) {
		t.Fatalf("documents differ:\n got: %s\nwant: %s", gb, wb)
	}
}
