package processing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/meetsum/meeting-summarizer/internal/domain/entities"
	"github.com/meetsum/meeting-summarizer/internal/usecase/llm"
)

type fakeMeetingRepo struct {
	meeting       *entities.Meeting
	claimResult   bool
	claimErr      error
	findErr       error
	saveErr       error
	claimCalls    int
	savedSummary  *entities.MeetingSummary
	savedItems    []*entities.ActionItem
	savedKeywords []*entities.MeetingKeyword
	statusWrites  []entities.MeetingStatus
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error { return nil }

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.meeting, nil
}

func (f *fakeMeetingRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entities.Meeting, error) {
	return f.meeting, nil
}

func (f *fakeMeetingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	f.claimCalls++
	return f.claimResult, f.claimErr
}

func (f *fakeMeetingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.statusWrites = append(f.statusWrites, status)
	return nil
}

func (f *fakeMeetingRepo) SaveProcessingResult(ctx context.Context, meetingID uuid.UUID, summary *entities.MeetingSummary, items []*entities.ActionItem, keywords []*entities.MeetingKeyword) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedSummary = summary
	f.savedItems = items
	f.savedKeywords = keywords
	return nil
}

func (f *fakeMeetingRepo) GetSummary(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingSummary, error) {
	return f.savedSummary, nil
}

type fakeExtractor struct {
	result   *entities.ExtractionResult
	err      error
	panicMsg string
	cancel   context.CancelFunc
}

func (f *fakeExtractor) Extract(ctx context.Context, transcript string) (*entities.ExtractionResult, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.cancel != nil {
		f.cancel()
	}
	return f.result, f.err
}

func newQueuedMeeting(transcript string) *entities.Meeting {
	return entities.NewMeeting(uuid.New(), "Sprint Sync", transcript)
}

func deadlineString(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

func TestProcessNotQueuedIsNoOp(t *testing.T) {
	repo := &fakeMeetingRepo{claimResult: false}
	svc := NewService(repo, &fakeExtractor{}, zap.NewNop())

	outcome, err := svc.Process(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !outcome.Skipped {
		t.Fatal("expected skipped outcome for non-queued meeting")
	}
	if len(repo.statusWrites) != 0 {
		t.Fatalf("no status writes expected, got %v", repo.statusWrites)
	}
}

func TestProcessHappyPath(t *testing.T) {
	meeting := newQueuedMeeting("we discussed the budget budget and the upcoming deadline deadline for the release")
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}
	extractor := &fakeExtractor{
		result: &entities.ExtractionResult{
			Summary:  "• point one",
			Provider: "groq",
			ActionItems: []entities.ExtractedActionItem{
				{Description: "send the notes", Owner: "Ana", Deadline: "2025-07-01", Priority: "high"},
			},
		},
	}
	svc := NewService(repo, extractor, zap.NewNop())

	outcome, err := svc.Process(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if outcome.Status != entities.MeetingStatusCompleted {
		t.Fatalf("expected completed, got %s", outcome.Status)
	}
	if outcome.Provider != "groq" || outcome.ActionItemCount != 1 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if repo.savedSummary == nil || repo.savedSummary.Summary != "• point one" || repo.savedSummary.Provider != "groq" {
		t.Fatalf("unexpected saved summary: %+v", repo.savedSummary)
	}
	if len(repo.savedItems) != 1 {
		t.Fatalf("expected 1 saved item, got %d", len(repo.savedItems))
	}
	item := repo.savedItems[0]
	if item.Owner != "Ana" || item.Priority != "high" || deadlineString(item.Deadline) != "2025-07-01" {
		t.Fatalf("unexpected saved item: %+v", item)
	}
	if item.Status != entities.ActionItemStatusPending {
		t.Fatalf("new items must start pending, got %s", item.Status)
	}
	if len(repo.savedKeywords) != 2 {
		t.Fatalf("expected budget and deadline keywords, got %+v", repo.savedKeywords)
	}
}

func TestProcessInvalidDeadlineFallsBack(t *testing.T) {
	meeting := newQueuedMeeting("transcript body long enough for the purposes of this test")
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}
	extractor := &fakeExtractor{
		result: &entities.ExtractionResult{
			Summary:  "• s",
			Provider: "google",
			ActionItems: []entities.ExtractedActionItem{
				{Description: "fix dates", Owner: "Team", Deadline: "next Tuesday", Priority: "urgent!!"},
			},
		},
	}
	svc := NewService(repo, extractor, zap.NewNop())
	fixed := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if _, err := svc.Process(context.Background(), meeting.ID); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	item := repo.savedItems[0]
	if deadlineString(item.Deadline) != "2025-06-17" {
		t.Fatalf("expected fallback deadline now+7d, got %s", deadlineString(item.Deadline))
	}
	if item.Priority != entities.ActionItemPriorityMedium {
		t.Fatalf("unknown priority must clamp to medium, got %q", item.Priority)
	}
}

func TestProcessExtractionFailureMarksFailed(t *testing.T) {
	meeting := newQueuedMeeting("short")
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}
	extractor := &fakeExtractor{err: entities.ErrTranscriptTooShort}
	svc := NewService(repo, extractor, zap.NewNop())

	_, err := svc.Process(context.Background(), meeting.ID)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, entities.ErrTranscriptTooShort) {
		t.Fatalf("expected wrapped ErrTranscriptTooShort, got %v", err)
	}
	if len(repo.statusWrites) != 1 || repo.statusWrites[0] != entities.MeetingStatusFailed {
		t.Fatalf("expected a single failed status write, got %v", repo.statusWrites)
	}
}

func TestProcessPersistFailureMarksFailed(t *testing.T) {
	meeting := newQueuedMeeting("a perfectly reasonable transcript for this particular test case")
	repo := &fakeMeetingRepo{
		meeting:     meeting,
		claimResult: true,
		saveErr:     errors.New("connection reset"),
	}
	extractor := &fakeExtractor{
		result: &entities.ExtractionResult{Summary: "• s", Provider: "groq"},
	}
	svc := NewService(repo, extractor, zap.NewNop())

	if _, err := svc.Process(context.Background(), meeting.ID); err == nil {
		t.Fatal("expected error")
	}
	if len(repo.statusWrites) != 1 || repo.statusWrites[0] != entities.MeetingStatusFailed {
		t.Fatalf("expected failed status write, got %v", repo.statusWrites)
	}
}

func TestProcessPanicMarksFailed(t *testing.T) {
	meeting := newQueuedMeeting("a perfectly reasonable transcript for this particular test case")
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}
	extractor := &fakeExtractor{panicMsg: "nil pointer somewhere deep"}
	svc := NewService(repo, extractor, zap.NewNop())

	outcome, err := svc.Process(context.Background(), meeting.ID)
	if err == nil || !strings.Contains(err.Error(), "panicked") {
		t.Fatalf("expected panic error, got %v", err)
	}
	if outcome != nil {
		t.Fatalf("expected nil outcome after panic, got %+v", outcome)
	}
	if len(repo.statusWrites) != 1 || repo.statusWrites[0] != entities.MeetingStatusFailed {
		t.Fatalf("expected failed status write after panic, got %v", repo.statusWrites)
	}
}

// A job whose context dies mid-flight (timeout or shutdown) must still get
// its failed status written, or the row stays in processing and can never
// be claimed again.
func TestProcessDeadContextStillMarksFailed(t *testing.T) {
	meeting := newQueuedMeeting("a perfectly reasonable transcript for this particular test case")
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}

	ctx, cancel := context.WithCancel(context.Background())
	extractor := &fakeExtractor{err: errors.New("provider timed out"), cancel: cancel}
	svc := NewService(repo, extractor, zap.NewNop())

	if _, err := svc.Process(ctx, meeting.ID); err == nil {
		t.Fatal("expected error")
	}
	if len(repo.statusWrites) != 1 || repo.statusWrites[0] != entities.MeetingStatusFailed {
		t.Fatalf("expected failed status write despite cancelled job context, got %v", repo.statusWrites)
	}
}

// End-to-end through the real gateway with no providers configured: the mock
// template must complete the pipeline and only repeated vocabulary terms may
// become keywords.
func TestProcessMockFallbackEndToEnd(t *testing.T) {
	filler := []string{
		"the", "team", "met", "to", "walk", "through", "quarterly", "goals",
		"and", "agreed", "on", "next", "steps", "for", "each", "workstream",
	}
	var sb strings.Builder
	// One mention of "planning" steers topic detection without crossing
	// the keyword storage threshold.
	sb.WriteString("planning ")
	for len(strings.Fields(sb.String())) < 180 {
		sb.WriteString(strings.Join(filler, " "))
		sb.WriteString(" ")
	}
	sb.WriteString("deadline deadline deadline milestone milestone milestone testing")
	transcript := sb.String()

	meeting := newQueuedMeeting(transcript)
	repo := &fakeMeetingRepo{meeting: meeting, claimResult: true}
	gateway := llm.NewGateway(nil, zap.NewNop())
	svc := NewService(repo, gateway, zap.NewNop())

	outcome, err := svc.Process(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if outcome.Status != entities.MeetingStatusCompleted {
		t.Fatalf("expected completed, got %s", outcome.Status)
	}
	if outcome.Provider != "mock" {
		t.Fatalf("expected mock provider, got %q", outcome.Provider)
	}

	// 5-bullet mock template referencing the detected topic.
	if got := strings.Count(repo.savedSummary.Summary, "•"); got != 5 {
		t.Fatalf("expected 5 bullets, got %d", got)
	}
	if !strings.Contains(repo.savedSummary.Summary, "planning") {
		t.Fatalf("summary should reference the detected topic: %q", repo.savedSummary.Summary)
	}

	// First mock item: high priority, due in three days.
	wantDeadline := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	first := repo.savedItems[0]
	if first.Priority != entities.ActionItemPriorityHigh {
		t.Fatalf("expected high priority first item, got %q", first.Priority)
	}
	if deadlineString(first.Deadline) != wantDeadline {
		t.Fatalf("expected deadline %s, got %s", wantDeadline, deadlineString(first.Deadline))
	}

	// testing appears once and must not be stored; deadline and milestone
	// appear three times each.
	byKeyword := make(map[string]int)
	for _, kw := range repo.savedKeywords {
		byKeyword[kw.Keyword] = kw.Frequency
	}
	if len(byKeyword) != 2 || byKeyword["deadline"] != 3 || byKeyword["milestone"] != 3 {
		t.Fatalf("unexpected keywords: %+v", byKeyword)
	}
}
