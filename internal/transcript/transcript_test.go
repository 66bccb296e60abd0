package transcript

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/socralabs/socra/internal/oracle"
)

func askedAt(i int) time.Time {
	return time.Date(2026, 3, 1, 10, 0, i, 0, time.UTC)
}

func openExchange(concept, text string) Exchange {
	return Exchange{
		ConceptID: concept,
		Question:  oracle.Question{Kind: oracle.KindQuestion, Text: text},
		AskedAt:   askedAt(0),
	}
}

func TestAppend_AssignsSequence(t *testing.T) {
	tr := New()

	ex, err := tr.Append(openExchange("base_case", "What stops the calls?"))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if ex.Seq != 1 {
		t.Errorf("Seq = %d, want 1", ex.Seq)
	}
	if _, err := tr.Seal("the base case", oracle.Verdict{Grade: oracle.GradeCorrect}, askedAt(1)); err != nil {
		t.Fatalf("Seal: %v", err)
	}

	ex2, err := tr.Append(openExchange("base_case", "And for an empty list?"))
	if err != nil {
		t.Fatalf("Append second: %v", err)
	}
	if ex2.Seq != 2 {
		t.Errorf("Seq = %d, want 2", ex2.Seq)
	}
}

func TestAppend_RejectsWhileOpen(t *testing.T) {
	tr := New()
	if _, err := tr.Append(openExchange("base_case", "q1")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	_, err := tr.Append(openExchange("base_case", "q2"))
	if !errors.Is(err, ErrOpenExchange) {
		t.Fatalf("err = %v, want ErrOpenExchange", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1 after rejected append", tr.Len())
	}
}

func TestSeal_RequiresOpenExchange(t *testing.T) {
	tr := New()
	_, err := tr.Seal("answer", oracle.Verdict{Grade: oracle.GradeCorrect}, askedAt(1))
	if !errors.Is(err, ErrNoOpenExchange) {
		t.Fatalf("err = %v, want ErrNoOpenExchange", err)
	}
}

func TestSeal_ClosesTheOpenExchange(t *testing.T) {
	tr := New()
	if _, err := tr.Append(openExchange("base_case", "q1")); err != nil {
		t.Fatal(err)
	}

	sealed, err := tr.Seal("a1", oracle.Verdict{Grade: oracle.GradePartial, Probe: "why?"}, askedAt(2))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !sealed.IsSealed() {
		t.Fatal("exchange not sealed after Seal")
	}
	if sealed.Answer != "a1" {
		t.Errorf("Answer = %q, want a1", sealed.Answer)
	}
	if tr.Open() != nil {
		t.Error("Open() should be nil after sealing")
	}
}

func TestSealedForConcept_FiltersAndOrders(t *testing.T) {
	tr := New()
	seed := []struct {
		concept string
		grade   oracle.Grade
	}{
		{"base_case", oracle.GradeIncorrect},
		{"base_case", oracle.GradeCorrect},
		{"self_reference", oracle.GradeCorrect},
	}
	for i, s := range seed {
		if _, err := tr.Append(openExchange(s.concept, "q")); err != nil {
			t.Fatal(err)
		}
		if _, err := tr.Seal("a", oracle.Verdict{Grade: s.grade}, askedAt(i)); err != nil {
			t.Fatal(err)
		}
	}
	// Leave one open; it must not appear in sealed views.
	if _, err := tr.Append(openExchange("base_case", "pending")); err != nil {
		t.Fatal(err)
	}

	got := tr.SealedForConcept("base_case")
	if len(got) != 2 {
		t.Fatalf("len(SealedForConcept) = %d, want 2", len(got))
	}
	if got[0].Verdict.Grade != oracle.GradeIncorrect || got[1].Verdict.Grade != oracle.GradeCorrect {
		t.Error("sealed exchanges out of order")
	}

	turns := tr.Turns("base_case")
	if len(turns) != 2 {
		t.Fatalf("len(Turns) = %d, want 2", len(turns))
	}
	if turns[1].Grade != oracle.GradeCorrect {
		t.Errorf("last turn grade = %q, want correct", turns[1].Grade)
	}
}

func TestExportRoundTrip(t *testing.T) {
	tr := New()
	if _, err := tr.Append(Exchange{
		ConceptID: "base_case",
		Question:  oracle.Question{Kind: oracle.KindQuestion, Text: "What does factorial(0) return?", Example: "factorial(0)"},
		AskedAt:   askedAt(0),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Seal("1", oracle.Verdict{Grade: oracle.GradeCorrect, AppliesTransfer: false, Probe: "why 1?"}, askedAt(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.Append(Exchange{
		ConceptID:  "base_case",
		Question:   oracle.Question{Kind: oracle.KindQuestion, Text: "Simpler: how many calls for factorial(1)?"},
		Depth:      1,
		Simplified: true,
		AskedAt:    askedAt(2),
	}); err != nil {
		t.Fatal(err)
	}

	records := tr.Export()
	if len(records) != 3 {
		t.Fatalf("len(Export) = %d, want 3 (two tutor, one learner)", len(records))
	}
	if records[0].Role != RoleTutor || records[1].Role != RoleLearner || records[2].Role != RoleTutor {
		t.Fatal("export roles out of order")
	}
	if !records[2].Simplified || records[2].Depth != 1 {
		t.Error("export lost simplification flags")
	}

	// Through JSON and back.
	blob, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []Record
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatal(err)
	}

	rebuilt, err := FromRecords(decoded)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if !reflect.DeepEqual(rebuilt.Export(), records) {
		t.Error("export → rebuild → export is not idempotent")
	}
	if rebuilt.Open() == nil || rebuilt.Open().Question.Text != "Simpler: how many calls for factorial(1)?" {
		t.Error("rebuilt transcript lost the open exchange")
	}
}

func TestFromRecords_RejectsMalformedStreams(t *testing.T) {
	v := &oracle.Verdict{Grade: oracle.GradeCorrect}

	cases := []struct {
		name    string
		records []Record
	}{
		{"answer without question", []Record{
			{ConceptID: "a", Role: RoleLearner, Text: "x", Verdict: v},
		}},
		{"two questions in a row", []Record{
			{ConceptID: "a", Role: RoleTutor, Text: "q1"},
			{ConceptID: "a", Role: RoleTutor, Text: "q2"},
		}},
		{"answer missing verdict", []Record{
			{ConceptID: "a", Role: RoleTutor, Text: "q"},
			{ConceptID: "a", Role: RoleLearner, Text: "x"},
		}},
		{"concept mismatch", []Record{
			{ConceptID: "a", Role: RoleTutor, Text: "q"},
			{ConceptID: "b", Role: RoleLearner, Text: "x", Verdict: v},
		}},
		{"unknown role", []Record{
			{ConceptID: "a", Role: "narrator", Text: "q"},
		}},
	}

	for _, tc := range cases {
		if _, err := FromRecords(tc.records); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
