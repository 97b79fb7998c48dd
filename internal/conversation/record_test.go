package conversation

import (
	"reflect"
	"testing"
)

func TestMergeSystemPrompt_InsertsWhenAbsent(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	out := MergeSystemPrompt(history, "Be kind")

	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
	if out[0].Role != RoleSystem || out[0].Content != "Be kind" {
		t.Fatalf("unexpected head: %+v", out[0])
	}
	if out[1].Content != "hi" || out[2].Content != "hello" {
		t.Fatalf("conversation order changed: %+v", out)
	}
}

func TestMergeSystemPrompt_ReplacesContent(t *testing.T) {
	history := []Message{
		{Role: RoleSystem, Content: "Be kind"},
		{Role: RoleUser, Content: "hi"},
	}

	out := MergeSystemPrompt(history, "Be terse")

	if out[0].Role != RoleSystem || out[0].Content != "Be terse" {
		t.Fatalf("system content not replaced: %+v", out[0])
	}
	if len(out) != 2 || out[1].Content != "hi" {
		t.Fatalf("user message disturbed: %+v", out)
	}
}

func TestMergeSystemPrompt_CollapsesDuplicates(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleSystem, Content: "stray"},
		{Role: RoleAssistant, Content: "b"},
		{Role: RoleSystem, Content: "another stray"},
	}

	out := MergeSystemPrompt(history, "only one")

	systems := 0
	for _, m := range out {
		if m.Role == RoleSystem {
			systems++
		}
	}
	if systems != 1 {
		t.Fatalf("expected exactly 1 system message, got %d", systems)
	}
	if out[0].Role != RoleSystem {
		t.Fatalf("system message not first: %+v", out)
	}
	if out[1].Content != "a" || out[2].Content != "b" {
		t.Fatalf("non-system order changed: %+v", out)
	}
}

func TestMergeSystemPrompt_Idempotent(t *testing.T) {
	history := []Message{
		{Role: RoleSystem, Content: "old"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	once := MergeSystemPrompt(history, "new")
	twice := MergeSystemPrompt(once, "new")

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeSystemPrompt_DoesNotMutateInput(t *testing.T) {
	history := []Message{
		{Role: RoleSystem, Content: "old"},
		{Role: RoleUser, Content: "hi"},
	}
	snapshot := append([]Message(nil), history...)

	_ = MergeSystemPrompt(history, "new")

	if !reflect.DeepEqual(history, snapshot) {
		t.Fatalf("input mutated: %+v", history)
	}
}

func TestAppendTurn_PreservesPriorMessages(t *testing.T) {
	history := []Message{
		{Role: RoleSystem, Content: "p"},
		{Role: RoleUser, Content: "hi"},
	}

	out := AppendTurn(history, RoleAssistant, "hello")

	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}
	if !reflect.DeepEqual(out[:2], history) {
		t.Fatalf("earlier entries changed: %+v", out)
	}
	if out[2].Role != RoleAssistant || out[2].Content != "hello" {
		t.Fatalf("unexpected tail: %+v", out[2])
	}
}

func TestDecodeRecord_Valid(t *testing.T) {
	rec := decodeRecord([]byte(`{"createdAt":1700000000000,"history":[{"role":"user","content":"hi"}]}`))

	if rec.CreatedAt != 1700000000000 {
		t.Fatalf("createdAt lost: %d", rec.CreatedAt)
	}
	if len(rec.History) != 1 || rec.History[0].Content != "hi" {
		t.Fatalf("history lost: %+v", rec.History)
	}
}

func TestDecodeRecord_RepairsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":          `{{{`,
		"history is string": `{"createdAt":1,"history":"oops"}`,
		"history is object": `{"history":{"role":"user"}}`,
		"empty":             ``,
	}
	for name, raw := range cases {
		rec := decodeRecord([]byte(raw))
		if rec == nil {
			t.Fatalf("%s: got nil record", name)
		}
		if len(rec.History) != 0 {
			t.Fatalf("%s: expected empty history, got %+v", name, rec.History)
		}
		if rec.CreatedAt == 0 {
			t.Fatalf("%s: missing timestamp", name)
		}
	}
}
