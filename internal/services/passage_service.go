package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ielts-prep/reading-test-service/internal/cache"
	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"github.com/ielts-prep/reading-test-service/internal/utils"
	"gorm.io/datatypes"
)

const (
	readingTestCacheKey = "reading_test:active"
	readingTestCacheTTL = 5 * time.Minute
)

// PassageResolver picks the passage new sessions run against. The default
// picks the first passage by passage number; swapping the resolver is how
// multi-passage selection would land without touching the lifecycle code.
type PassageResolver interface {
	Resolve(ctx context.Context) (*models.ReadingPassage, error)
}

type firstPassageResolver struct {
	repo repositories.Repository
}

func NewFirstPassageResolver(repo repositories.Repository) PassageResolver {
	return &firstPassageResolver{repo: repo}
}

func (r *firstPassageResolver) Resolve(ctx context.Context) (*models.ReadingPassage, error) {
	passage, err := r.repo.Passage().GetFirst(ctx)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPassageNotFound
		}
		return nil, fmt.Errorf("failed to resolve active passage: %w", err)
	}
	return passage, nil
}

// ===== RESPONSE TYPES =====

// QuestionView is a question as shown to the test taker: the answer key and
// explanation are never exposed here.
type QuestionView struct {
	ID             uint                `json:"id"`
	QuestionType   models.QuestionType `json:"question_type"`
	QuestionText   string              `json:"question_text"`
	QuestionNumber int                 `json:"question_number"`
	Options        datatypes.JSON      `json:"options,omitempty"`
	Marks          int                 `json:"marks"`
}

type ReadingTestResponse struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	PassageNumber int            `json:"passage_number"`
	Questions     []QuestionView `json:"questions"`
	SessionID     string         `json:"session_id,omitempty"`
}

// PassageService serves test content to participants.
type PassageService interface {
	// GetReadingTest returns the active passage with its questions, answer
	// keys stripped. A provided session id is echoed back unmodified.
	GetReadingTest(ctx context.Context, sessionID string) (*ReadingTestResponse, error)

	// ListQuestions is the legacy flat question listing.
	ListQuestions(ctx context.Context) ([]QuestionView, error)
}

type passageService struct {
	repo     repositories.Repository
	resolver PassageResolver
	cache    cache.CacheService
	logger   utils.Logger
}

func NewPassageService(
	repo repositories.Repository,
	resolver PassageResolver,
	cacheService cache.CacheService,
	logger utils.Logger,
) PassageService {
	return &passageService{
		repo:     repo,
		resolver: resolver,
		cache:    cacheService,
		logger:   logger,
	}
}

func (s *passageService) GetReadingTest(ctx context.Context, sessionID string) (*ReadingTestResponse, error) {
	var cached ReadingTestResponse
	if err := s.cache.Get(ctx, readingTestCacheKey, &cached); err == nil {
		cached.SessionID = sessionID
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Reading test cache read failed", "error", err)
	}

	passage, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	response := buildReadingTestResponse(passage)
	if err := s.cache.Set(ctx, readingTestCacheKey, response, readingTestCacheTTL); err != nil {
		s.logger.Warn("Reading test cache write failed", "error", err)
	}

	response.SessionID = sessionID
	return response, nil
}

func (s *passageService) ListQuestions(ctx context.Context) ([]QuestionView, error) {
	questions, err := s.repo.Passage().ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, newQuestionView(q))
	}
	return views, nil
}

func buildReadingTestResponse(passage *models.ReadingPassage) *ReadingTestResponse {
	questions := make([]QuestionView, 0, len(passage.Questions))
	for i := range passage.Questions {
		questions = append(questions, newQuestionView(&passage.Questions[i]))
	}

	return &ReadingTestResponse{
		ID:            passage.ID,
		Title:         passage.Title,
		Content:       passage.Content,
		PassageNumber: passage.PassageNumber,
		Questions:     questions,
	}
}

func newQuestionView(q *models.Question) QuestionView {
	return QuestionView{
		ID:             q.ID,
		QuestionType:   q.Type,
		QuestionText:   q.Text,
		QuestionNumber: q.Number,
		Options:        q.Options,
		Marks:          q.Marks,
	}
}
