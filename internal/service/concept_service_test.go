package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnloop-backend/internal/llm"
	"learnloop-backend/internal/model"
	"learnloop-backend/internal/repository"
)

const conceptModuleReply = `{
	"topicName": "Sorting Algorithms",
	"category": "Computer Science",
	"description": "From bubble sort to quicksort.",
	"concepts": [
		{"title": "Bubble sort", "content": "c1", "difficulty": "beginner"},
		{"title": "Insertion sort", "content": "c2", "difficulty": "beginner"},
		{"title": "Merge sort", "content": "c3", "difficulty": "intermediate"},
		{"title": "Quicksort", "content": "c4", "difficulty": "intermediate"},
		{"title": "Heapsort", "content": "c5", "difficulty": "advanced"}
	]
}`

func newConceptService(t *testing.T) (ConceptService, *fakeCompletionClient, repository.ProgressRepository) {
	t.Helper()
	db := newTestDB(t)
	client := &fakeCompletionClient{reply: conceptModuleReply}
	topicRepo := repository.NewTopicRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	svc := NewConceptService(topicRepo, progressRepo, llm.NewGenerator(client))
	return svc, client, progressRepo
}

func TestConceptCacheMissGeneratesAndPersists(t *testing.T) {
	svc, client, _ := newConceptService(t)

	result, err := svc.GetOrGenerate(context.Background(), "sorting algorithms", "")
	require.NoError(t, err)

	assert.False(t, result.Cached)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 1, client.calls)

	require.NotNil(t, result.Topic)
	assert.Equal(t, "Sorting Algorithms", result.Topic.Name)
	assert.NotZero(t, result.Topic.ID)

	// Order indices fall back to array position when the reply omits them.
	require.Len(t, result.Concepts, 5)
	for i, concept := range result.Concepts {
		assert.Equal(t, i, concept.OrderIndex)
		assert.Equal(t, result.Topic.ID, concept.TopicID)
	}
}

func TestConceptCacheHitSkipsGeneration(t *testing.T) {
	svc, client, _ := newConceptService(t)

	_, err := svc.GetOrGenerate(context.Background(), "sorting algorithms", "")
	require.NoError(t, err)

	result, err := svc.GetOrGenerate(context.Background(), "sorting algorithms", "")
	require.NoError(t, err)

	assert.True(t, result.Cached)
	assert.Empty(t, result.BatchID)
	assert.Len(t, result.Concepts, 5)
	assert.Equal(t, 1, client.calls, "cache hit must not call the LLM")
}

func TestConceptCacheHitMatchesSubstring(t *testing.T) {
	svc, client, _ := newConceptService(t)

	_, err := svc.GetOrGenerate(context.Background(), "sorting algorithms", "")
	require.NoError(t, err)

	// The stored topic name, not the request string, is what matches.
	result, err := svc.GetOrGenerate(context.Background(), "Sorting", "")
	require.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, 1, client.calls)
}

func TestConceptMissSeedsProgressRow(t *testing.T) {
	svc, _, progressRepo := newConceptService(t)

	result, err := svc.GetOrGenerate(context.Background(), "sorting algorithms", "user-9")
	require.NoError(t, err)

	rows, err := progressRepo.GetByUser("user-9")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, result.Topic.ID, rows[0].TopicID)
	assert.Zero(t, rows[0].XPEarned)
}

func TestConceptGenerationFailureSurfaces(t *testing.T) {
	db := newTestDB(t)
	client := &fakeCompletionClient{reply: "garbage"}
	svc := NewConceptService(
		repository.NewTopicRepository(db),
		repository.NewProgressRepository(db),
		llm.NewGenerator(client),
	)

	_, err := svc.GetOrGenerate(context.Background(), "anything", "")
	require.Error(t, err)

	// Nothing persisted on a failed generation.
	var count int64
	require.NoError(t, db.Model(&model.Topic{}).Count(&count).Error)
	assert.Zero(t, count)
}
