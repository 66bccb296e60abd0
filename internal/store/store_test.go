package store

import (
	"context"
	"testing"
	"time"

	"github.com/socralabs/socra/internal/oracle"
	"github.com/socralabs/socra/internal/topic"
	"github.com/socralabs/socra/internal/transcript"
	"github.com/socralabs/socra/internal/tutor"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	cur, err := s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != 5 {
		t.Errorf("current = %d, want 5", cur)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tables := []string{
		"session_events",
		"exchange_events",
		"concept_events",
		"oracle_request_events",
		"snapshots",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSessionEventsFoldIntoSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1", TopicID: "recursion", Action: actionStart,
	})
	if err != nil {
		t.Fatalf("append start 1: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-2", TopicID: "closures", Action: actionStart,
	})
	if err != nil {
		t.Fatalf("append start 2: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		TopicID:        "recursion",
		Action:         actionEnd,
		TotalExchanges: 7,
		CorrectAnswers: 5,
		DurationSecs:   300,
		Mastered:       []string{"base_case"},
		Stalled:        []string{"stack_growth"},
	})
	if err != nil {
		t.Fatalf("append end 1: %v", err)
	}

	sessions, err := repo.QuerySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}

	// Most recent first.
	if sessions[0].SessionID != "sess-2" {
		t.Errorf("sessions[0] = %q, want sess-2", sessions[0].SessionID)
	}
	if sessions[0].EndedAt != nil {
		t.Error("sess-2 should have no end time")
	}

	got := sessions[1]
	if got.SessionID != "sess-1" || got.TopicID != "recursion" {
		t.Errorf("sessions[1] = %q/%q, want sess-1/recursion", got.SessionID, got.TopicID)
	}
	if got.EndedAt == nil {
		t.Fatal("sess-1 should have an end time")
	}
	if got.TotalExchanges != 7 || got.CorrectAnswers != 5 || got.DurationSecs != 300 {
		t.Errorf("totals = %d/%d/%d, want 7/5/300",
			got.TotalExchanges, got.CorrectAnswers, got.DurationSecs)
	}
	if len(got.Mastered) != 1 || got.Mastered[0] != "base_case" {
		t.Errorf("mastered = %v, want [base_case]", got.Mastered)
	}
	if len(got.Stalled) != 1 || got.Stalled[0] != "stack_growth" {
		t.Errorf("stalled = %v, want [stack_growth]", got.Stalled)
	}

	limited, err := repo.QuerySessions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "sess-2" {
		t.Errorf("limited = %v, want just sess-2", limited)
	}
}

func TestExchangeEventsRebuildArchive(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1", TopicID: "recursion", Action: actionStart,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	askedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lines := []ExchangeEventData{
		{
			SessionID: "sess-1", ConceptID: "base_case",
			Role: string(transcript.RoleTutor), Text: "What stops the calls?",
			Example: "factorial(3)", Timestamp: askedAt,
		},
		{
			SessionID: "sess-1", ConceptID: "base_case",
			Role: string(transcript.RoleLearner), Text: "The n==0 check.",
			Grade: string(oracle.GradeCorrect), Probe: "And without it?",
			Timestamp: askedAt.Add(time.Minute), Decision: "continue",
		},
		{
			SessionID: "sess-1", ConceptID: "base_case",
			Role: string(transcript.RoleTutor), Text: "What would sum(4) need to stop?",
			Transfer: true, Timestamp: askedAt.Add(2 * time.Minute),
		},
	}
	for i, line := range lines {
		if err := repo.AppendExchangeEvent(ctx, line); err != nil {
			t.Fatalf("append exchange %d: %v", i, err)
		}
	}

	a, err := repo.SessionArchive(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session archive: %v", err)
	}
	if a.TopicID != "recursion" {
		t.Errorf("topic = %q, want recursion", a.TopicID)
	}
	if a.EndedAt != nil {
		t.Error("live session should have nil EndedAt")
	}
	if len(a.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(a.Records))
	}
	if a.Records[0].Role != transcript.RoleTutor || a.Records[0].Example != "factorial(3)" {
		t.Errorf("record 0 = %+v, want tutor row with example", a.Records[0])
	}
	if a.Records[1].Verdict == nil || a.Records[1].Verdict.Grade != oracle.GradeCorrect {
		t.Errorf("record 1 verdict = %+v, want correct", a.Records[1].Verdict)
	}
	if a.Records[1].Verdict.Probe != "And without it?" {
		t.Errorf("record 1 probe = %q", a.Records[1].Verdict.Probe)
	}
	if !a.Records[2].Transfer {
		t.Error("record 2 should be a transfer probe")
	}

	// The rebuilt records must replay into a structurally valid
	// transcript with the third record still open.
	tr, err := transcript.FromRecords(a.Records)
	if err != nil {
		t.Fatalf("from records: %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("len = %d, want 2", tr.Len())
	}
	if tr.Open() == nil {
		t.Error("expected an open exchange")
	}

	if _, err := repo.SessionArchive(ctx, "nope"); err == nil {
		t.Error("expected error for unrecorded session")
	}
}

func TestConceptAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	grades := []string{
		string(oracle.GradeCorrect),
		string(oracle.GradeIncorrect),
		string(oracle.GradeCorrect),
	}
	for i, g := range grades {
		err := repo.AppendExchangeEvent(ctx, ExchangeEventData{
			SessionID: "sess-1", ConceptID: "base_case",
			Role: string(transcript.RoleLearner), Text: "answer", Grade: g,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// Tutor rows never count toward accuracy.
	err := repo.AppendExchangeEvent(ctx, ExchangeEventData{
		SessionID: "sess-1", ConceptID: "base_case",
		Role: string(transcript.RoleTutor), Text: "question",
	})
	if err != nil {
		t.Fatalf("append tutor row: %v", err)
	}

	acc, n, err := repo.ConceptAccuracy(ctx, "base_case")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %f, want 2/3", acc)
	}

	acc, n, err = repo.ConceptAccuracy(ctx, "unseen")
	if err != nil {
		t.Fatalf("accuracy unseen: %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("unseen = %f/%d, want 0/0", acc, n)
	}
}

func TestLatestConceptStatuses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ConceptEventData{
		{ConceptID: "base_case", FromStatus: "unvisited", ToStatus: "probing", Trigger: "prerequisites-met"},
		{ConceptID: "base_case", FromStatus: "probing", ToStatus: "mastered", Trigger: "transfer-shown"},
		{ConceptID: "self_reference", FromStatus: "unvisited", ToStatus: "probing", Trigger: "prerequisites-met"},
	}
	for i, e := range events {
		if err := repo.AppendConceptEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	statuses, err := repo.LatestConceptStatuses(ctx)
	if err != nil {
		t.Fatalf("latest statuses: %v", err)
	}
	if statuses["base_case"] != "mastered" {
		t.Errorf("base_case = %q, want mastered", statuses["base_case"])
	}
	if statuses["self_reference"] != "probing" {
		t.Errorf("self_reference = %q, want probing", statuses["self_reference"])
	}
}

func TestOracleEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	entries := []oracle.RequestLogEntry{
		{Provider: "anthropic", Model: "model-a", Purpose: "ask", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "req1", ResponseBody: "resp1"},
		{Provider: "anthropic", Model: "model-a", Purpose: "ask", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "model-b", Purpose: "judge", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range entries {
		if err := repo.AppendOracleRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryOracleEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Most recent first.
	if events[0].Purpose != "judge" {
		t.Errorf("events[0].Purpose = %q, want judge", events[0].Purpose)
	}
	if events[0].ErrorMessage != "boom" || events[0].Success {
		t.Errorf("events[0] should be the failed call, got %+v", events[0])
	}

	e, err := repo.GetOracleEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Purpose != "ask" {
		t.Fatalf("get = %+v, want the second ask", e)
	}

	missing, err := repo.GetOracleEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}

	byPurpose, err := repo.OracleUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose: ask then judge.
	ask := byPurpose[0]
	if ask.Purpose != "ask" || ask.Calls != 2 {
		t.Errorf("ask usage = %+v, want 2 calls", ask)
	}
	if ask.InputTokens != 400 || ask.OutputTokens != 200 {
		t.Errorf("ask tokens = %d/%d, want 400/200", ask.InputTokens, ask.OutputTokens)
	}
	if ask.AvgLatencyMs != 300 {
		t.Errorf("ask avg latency = %d, want 300", ask.AvgLatencyMs)
	}

	byModel, err := repo.OracleUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].Calls != 2 {
		t.Errorf("model-a usage = %+v", byModel[0])
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Topics: map[string]map[string]string{
				"recursion": {"base_case": "mastered", "stack_growth": "stalled"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
	if snap.Data.Topics["recursion"]["base_case"] != "mastered" {
		t.Errorf("base_case = %q, want mastered", snap.Data.Topics["recursion"]["base_case"])
	}
	if snap.Data.Topics["recursion"]["stack_growth"] != "stalled" {
		t.Errorf("stack_growth = %q, want stalled", snap.Data.Topics["recursion"]["stack_growth"])
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestRecorderPersistsSession(t *testing.T) {
	st := openTestStore(t)
	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo())
	orc := oracle.NewScriptedOracle()
	ctrl := tutor.NewController(orc, rec, nil)
	ctx := context.Background()

	top := topic.Topic{ID: "recursion", Name: "Recursion"}
	concepts := []topic.Concept{{ID: "base_case", Name: "Base case"}}

	s, err := ctrl.Start(ctx, top, concepts)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	turns := []struct {
		question string
		answer   string
		transfer bool
	}{
		{"What stops the calls?", "The n==0 check.", false},
		{"What would sum(4) need to stop?", "Hitting sum(0).", true},
	}
	for _, turn := range turns {
		orc.PushQuestion(turn.question)
		if _, err := ctrl.NextTurn(ctx, s, ""); err != nil {
			t.Fatalf("ask: %v", err)
		}
		orc.PushVerdict(oracle.GradeCorrect, turn.transfer)
		if _, err := ctrl.NextTurn(ctx, s, turn.answer); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if !s.Completed() {
		t.Fatal("expected session to complete")
	}
	ctrl.End(s)

	// Session fold.
	sessions, err := st.EventRepo().QuerySessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	info := sessions[0]
	if info.SessionID != s.ID || info.TopicID != "recursion" {
		t.Errorf("info = %q/%q, want %q/recursion", info.SessionID, info.TopicID, s.ID)
	}
	if info.EndedAt == nil {
		t.Error("expected an end time")
	}
	if info.TotalExchanges != 2 || info.CorrectAnswers != 2 {
		t.Errorf("totals = %d/%d, want 2/2", info.TotalExchanges, info.CorrectAnswers)
	}
	if len(info.Mastered) != 1 || info.Mastered[0] != "base_case" {
		t.Errorf("mastered = %v, want [base_case]", info.Mastered)
	}

	// The stored exchange rows rebuild the same transcript the session
	// exports.
	a, err := st.EventRepo().SessionArchive(ctx, s.ID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	want := tutor.ExportArchive(s)
	if len(a.Records) != len(want.Records) {
		t.Fatalf("records = %d, want %d", len(a.Records), len(want.Records))
	}
	for i := range want.Records {
		got, exp := a.Records[i], want.Records[i]
		if got.Role != exp.Role || got.ConceptID != exp.ConceptID || got.Text != exp.Text {
			t.Errorf("record %d = %s/%s/%q, want %s/%s/%q",
				i, got.Role, got.ConceptID, got.Text, exp.Role, exp.ConceptID, exp.Text)
		}
		if (got.Verdict == nil) != (exp.Verdict == nil) {
			t.Errorf("record %d verdict presence mismatch", i)
			continue
		}
		if got.Verdict != nil && got.Verdict.Grade != exp.Verdict.Grade {
			t.Errorf("record %d grade = %q, want %q", i, got.Verdict.Grade, exp.Verdict.Grade)
		}
	}
	if _, err := transcript.FromRecords(a.Records); err != nil {
		t.Fatalf("rebuilt records do not replay: %v", err)
	}

	// Transitions landed: into probing, then mastered.
	statuses, err := st.EventRepo().LatestConceptStatuses(ctx)
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if statuses["base_case"] != "mastered" {
		t.Errorf("base_case = %q, want mastered", statuses["base_case"])
	}

	// Every event drew from the same sequence: start, transition, two
	// asks, two judges, mastery transition, end.
	seq, err := st.EventRepo().CurrentSequence(ctx)
	if err != nil {
		t.Fatalf("current sequence: %v", err)
	}
	if seq != 8 {
		t.Errorf("sequence = %d, want 8", seq)
	}

	// Snapshot recorded the mastery at that sequence.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot after session end")
	}
	if snap.Sequence != 8 {
		t.Errorf("snapshot sequence = %d, want 8", snap.Sequence)
	}
	if snap.Data.Topics["recursion"]["base_case"] != "mastered" {
		t.Errorf("snapshot status = %q, want mastered", snap.Data.Topics["recursion"]["base_case"])
	}
}

func TestSnapshotMergeKeepsMastery(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// Seed an earlier snapshot where the concept was mastered.
	err := st.SnapshotRepo().Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC().Add(-time.Hour),
		Data: SnapshotData{
			Version: 1,
			Topics: map[string]map[string]string{
				"recursion": {"base_case": "mastered"},
			},
		},
	})
	if err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	rec := NewRecorder(st.EventRepo(), st.SnapshotRepo())
	orc := oracle.NewScriptedOracle()
	ctrl := tutor.NewController(orc, rec, nil)

	top := topic.Topic{ID: "recursion", Name: "Recursion"}
	concepts := []topic.Concept{{ID: "base_case", Name: "Base case"}}
	s, err := ctrl.Start(ctx, top, concepts)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Miss through the whole remediation budget so the concept stalls.
	for i := 0; i < 6; i++ {
		orc.PushQuestion("q")
		if _, err := ctrl.NextTurn(ctx, s, ""); err != nil {
			t.Fatalf("ask %d: %v", i, err)
		}
		orc.PushVerdict(oracle.GradeIncorrect, false)
		if _, err := ctrl.NextTurn(ctx, s, "wrong"); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	if !s.Completed() {
		t.Fatal("expected session to complete after stall")
	}
	ctrl.End(s)

	// The stall must not overwrite the earlier mastery.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Topics["recursion"]["base_case"] != "mastered" {
		t.Errorf("status = %q, want mastered preserved", snap.Data.Topics["recursion"]["base_case"])
	}
}
