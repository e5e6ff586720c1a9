package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ielts-prep/reading-test-service/internal/cache"
	"github.com/ielts-prep/reading-test-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// memoryCache is an in-process CacheService for tests.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newTestPassageService(repo *mockRepository, cacheService cache.CacheService) PassageService {
	return NewPassageService(repo, NewFirstPassageResolver(repo), cacheService, testLogger())
}

func TestGetReadingTest_StripsAnswerKeys(t *testing.T) {
	explanation := "stated in paragraph two"
	passage := &models.ReadingPassage{
		ID:            1,
		Title:         "The Honey Bee Waggle Dance",
		Content:       "Honey bees communicate...",
		PassageNumber: 1,
		Questions: []models.Question{
			{
				ID:            1,
				PassageID:     1,
				Number:        1,
				Type:          models.MultipleChoice,
				Text:          "What does the dance encode?",
				Options:       datatypes.JSON(`{"A":"Distance","B":"Distance and direction"}`),
				CorrectAnswer: "B",
				Explanation:   &explanation,
				Marks:         1,
			},
		},
	}

	repo := newMockRepository()
	repo.passage.On("GetFirst", mock.Anything).Return(passage, nil)

	service := newTestPassageService(repo, newMemoryCache())
	response, err := service.GetReadingTest(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "The Honey Bee Waggle Dance", response.Title)
	require.Len(t, response.Questions, 1)
	assert.Equal(t, "What does the dance encode?", response.Questions[0].QuestionText)
	assert.NotEmpty(t, response.Questions[0].Options)

	// The view type has no answer-key fields; the wire form must not leak
	// them either.
	payload, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "correct_answer")
	assert.NotContains(t, string(payload), "explanation")
}

func TestGetReadingTest_ServesFromCache(t *testing.T) {
	repo := newMockRepository()
	repo.passage.On("GetFirst", mock.Anything).Return(passageWithQuestions(13), nil).Once()

	service := newTestPassageService(repo, newMemoryCache())

	first, err := service.GetReadingTest(context.Background(), "")
	require.NoError(t, err)

	// Second call must come from cache; GetFirst is limited to one call.
	second, err := service.GetReadingTest(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Questions, 13)
	repo.passage.AssertExpectations(t)
}

func TestGetReadingTest_EchoesSessionID(t *testing.T) {
	repo := newMockRepository()
	repo.passage.On("GetFirst", mock.Anything).Return(passageWithQuestions(13), nil).Once()

	service := newTestPassageService(repo, newMemoryCache())

	response, err := service.GetReadingTest(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", response.SessionID)

	// The echoed id is per-request, not part of the cached payload.
	response, err = service.GetReadingTest(context.Background(), "def-456")
	require.NoError(t, err)
	assert.Equal(t, "def-456", response.SessionID)
}

func TestGetReadingTest_NoPassage(t *testing.T) {
	repo := newMockRepository()
	repo.passage.On("GetFirst", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := newTestPassageService(repo, cache.NoopCache{})
	_, err := service.GetReadingTest(context.Background(), "")

	assert.ErrorIs(t, err, ErrPassageNotFound)
}

func TestListQuestions_MapsViews(t *testing.T) {
	passage := passageWithQuestions(13)

	repo := newMockRepository()
	repo.passage.On("ListQuestions", mock.Anything).Return(questionPointers(passage), nil)

	service := newTestPassageService(repo, cache.NoopCache{})
	views, err := service.ListQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 13)
	assert.Equal(t, uint(1), views[0].ID)
	assert.Equal(t, 1, views[0].QuestionNumber)
	assert.Equal(t, models.MultipleChoice, views[0].QuestionType)
}
