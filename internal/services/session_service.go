package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ielts-prep/reading-test-service/internal/events"
	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

// A reading-test passage carries 13 or 14 gradable items; sessions cannot be
// started against anything else.
const (
	minPassageQuestions = 13
	maxPassageQuestions = 14
)

// ===== REQUEST / RESPONSE TYPES =====

type SubmitTestRequest struct {
	SessionID string            `json:"session_id" validate:"required"`
	Answers   map[string]string `json:"answers" validate:"required"`
}

type EndSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
}

type EndSessionResponse struct {
	Message   string `json:"message"`
	TimeTaken int    `json:"time_taken"`
}

// QuickScoreRequest is the legacy sessionless scoring payload.
type QuickScoreRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type QuickScoreResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// SessionService is the test-session lifecycle manager: one attempt per
// session, graded at most once.
type SessionService interface {
	Start(ctx context.Context) (*StartSessionResponse, error)
	Submit(ctx context.Context, req *SubmitTestRequest) (*TestResult, error)
	End(ctx context.Context, req *EndSessionRequest) (*EndSessionResponse, error)
	Result(ctx context.Context, sessionID string) (*TestResult, error)
	QuickSubmit(ctx context.Context, req *QuickScoreRequest) (*QuickScoreResponse, error)
}

type sessionService struct {
	repo      repositories.Repository
	resolver  PassageResolver
	publisher events.EventPublisher
	logger    utils.Logger
	validator *utils.Validator
}

func NewSessionService(
	repo repositories.Repository,
	resolver PassageResolver,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) SessionService {
	return &sessionService{
		repo:      repo,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== LIFECYCLE OPERATIONS =====

func (s *sessionService) Start(ctx context.Context) (*StartSessionResponse, error) {
	passage, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	count := len(passage.Questions)
	if count < minPassageQuestions || count > maxPassageQuestions {
		return nil, fmt.Errorf("%w: passage %d has %d", ErrInvalidQuestionCount, passage.ID, count)
	}

	session := &models.TestSession{
		SessionID:      uuid.NewString(),
		PassageID:      passage.ID,
		TotalQuestions: count,
		StartedAt:      time.Now(),
	}

	if err := s.repo.Session().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Test session started",
		"session_id", session.SessionID,
		"passage_id", passage.ID,
		"total_questions", count)

	s.publish(ctx, events.NewSessionStartedEvent(events.SessionStartedEvent{
		SessionID:      session.SessionID,
		PassageID:      passage.ID,
		TotalQuestions: count,
		StartedAt:      session.StartedAt,
	}))

	return &StartSessionResponse{SessionID: session.SessionID}, nil
}

func (s *sessionService) Submit(ctx context.Context, req *SubmitTestRequest) (*TestResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, ErrSessionAlreadyCompleted
	}

	now := time.Now()
	elapsed := session.ElapsedSeconds(now)
	if elapsed > models.MaxAttemptSeconds {
		// Nothing is persisted on expiry; the session stays unscored.
		return nil, ErrSessionExpired
	}

	questions, err := s.repo.Passage().GetQuestions(ctx, session.PassageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load passage questions: %w", err)
	}

	// Grade every question of the passage; missing submissions count as an
	// empty answer against the full denominator.
	submitted := make(map[uint]string, len(questions))
	correct := make(map[uint]bool, len(questions))
	records := make([]*models.UserAnswer, 0, len(questions))
	for _, q := range questions {
		answer := req.Answers[strconv.FormatUint(uint64(q.ID), 10)]
		isCorrect := Grade(q, answer)

		submitted[q.ID] = answer
		correct[q.ID] = isCorrect
		records = append(records, &models.UserAnswer{
			TestSessionID: session.ID,
			QuestionID:    q.ID,
			Answer:        answer,
			IsCorrect:     isCorrect,
			AnsweredAt:    now,
		})
	}

	summary := AggregateScore(questions, correct)

	// The completion CAS runs first inside the transaction: if a concurrent
	// Submit or End already finished the session, no answer rows are written.
	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		completed, err := tx.Session().Complete(ctx, session.ID, now, elapsed, summary.Score)
		if err != nil {
			return fmt.Errorf("failed to complete session: %w", err)
		}
		if !completed {
			return ErrSessionAlreadyCompleted
		}
		return tx.Answer().CreateBatch(ctx, records)
	})
	if err != nil {
		return nil, err
	}

	session.Score = summary.Score
	session.TimeTaken = elapsed
	session.CompletedAt = &now

	s.logger.Info("Test session submitted",
		"session_id", session.SessionID,
		"score", summary.Score,
		"total", summary.TotalMarks,
		"band_score", summary.Band,
		"time_taken", elapsed)

	s.publish(ctx, events.NewSessionSubmittedEvent(events.SessionSubmittedEvent{
		SessionID:   session.SessionID,
		PassageID:   session.PassageID,
		Score:       summary.Score,
		TotalMarks:  summary.TotalMarks,
		Percentage:  summary.Percentage,
		BandScore:   summary.Band,
		TimeTaken:   elapsed,
		SubmittedAt: now,
	}))

	return AssembleResult(session, questions, submitted, correct, summary), nil
}

func (s *sessionService) End(ctx context.Context, req *EndSessionRequest) (*EndSessionResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, ErrSessionAlreadyCompleted
	}

	now := time.Now()
	elapsed := session.ElapsedSeconds(now)

	// Forced termination: no grading, the score keeps whatever value it had.
	completed, err := s.repo.Session().Complete(ctx, session.ID, now, elapsed, session.Score)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	if !completed {
		return nil, ErrSessionAlreadyCompleted
	}

	s.logger.Info("Test session ended",
		"session_id", session.SessionID,
		"time_taken", elapsed)

	s.publish(ctx, events.NewSessionEndedEvent(events.SessionEndedEvent{
		SessionID: session.SessionID,
		PassageID: session.PassageID,
		TimeTaken: elapsed,
		EndedAt:   now,
	}))

	return &EndSessionResponse{Message: "Session ended", TimeTaken: elapsed}, nil
}

// Result re-fetches the report of a completed session from the stored answer
// records. Correctness is read back, not re-graded; the percentage and band
// are recomputed from it deterministically.
func (s *sessionService) Result(ctx context.Context, sessionID string) (*TestResult, error) {
	session, err := s.repo.Session().GetBySessionIDWithDetails(ctx, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !session.Completed() {
		return nil, ErrSessionNotCompleted
	}

	questions := make([]*models.Question, 0, len(session.Passage.Questions))
	for i := range session.Passage.Questions {
		questions = append(questions, &session.Passage.Questions[i])
	}

	submitted := make(map[uint]string, len(session.Answers))
	correct := make(map[uint]bool, len(session.Answers))
	for _, a := range session.Answers {
		submitted[a.QuestionID] = a.Answer
		correct[a.QuestionID] = a.IsCorrect
	}

	return AssembleResult(session, questions, submitted, correct, AggregateScore(questions, correct)), nil
}

// QuickSubmit is the legacy per-answer scoring path. It has no time window or
// duplicate-session checks but routes through the same grader, so correctness
// rules cannot diverge.
func (s *sessionService) QuickSubmit(ctx context.Context, req *QuickScoreRequest) (*QuickScoreResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	passage, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	session := &models.TestSession{
		SessionID:      uuid.NewString(),
		PassageID:      passage.ID,
		TotalQuestions: len(req.Answers),
		StartedAt:      time.Now(),
	}
	if err := s.repo.Session().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	score := 0
	for rawID, answer := range req.Answers {
		id, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			continue
		}
		question, err := s.repo.Passage().GetQuestion(ctx, uint(id))
		if err != nil {
			if repositories.IsNotFoundError(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load question %d: %w", id, err)
		}

		isCorrect := Grade(question, answer)
		record := &models.UserAnswer{
			TestSessionID: session.ID,
			QuestionID:    question.ID,
			Answer:        answer,
			IsCorrect:     isCorrect,
			AnsweredAt:    time.Now(),
		}
		if err := s.repo.Answer().Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save answer: %w", err)
		}
		if isCorrect {
			score++
		}
	}

	if err := s.repo.Session().UpdateScore(ctx, session.ID, score); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	return &QuickScoreResponse{Score: score, Total: len(req.Answers)}, nil
}

// ===== HELPERS =====

func (s *sessionService) getSession(ctx context.Context, sessionID string) (*models.TestSession, error) {
	session, err := s.repo.Session().GetBySessionID(ctx, sessionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *sessionService) publish(ctx context.Context, event *events.SessionEvent) {
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		s.logger.LogError(err, "Failed to publish session event", "event_type", event.Type)
	}
}
