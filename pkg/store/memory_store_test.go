package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndRead(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "s1", Message{Role: RoleUser, Content: "hello"}))
	require.NoError(t, s.Append(ctx, "s1", Message{Role: RoleAssistant, Content: "hi there"}))

	msgs, err := s.ReadRecent(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
}

func TestMemoryStoreReadRecentLimit(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		require.NoError(t, s.Append(ctx, "s1", Message{Role: role, Content: string(rune('a' + i))}))
	}

	msgs, err := s.ReadRecent(ctx, "s1", 4)
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	// Tail of the history, oldest first.
	assert.Equal(t, "g", msgs[0].Content)
	assert.Equal(t, "j", msgs[3].Content)
}

func TestMemoryStoreAppendTurn(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	err := s.AppendTurn(ctx, "s1",
		Message{Role: RoleUser, Content: "question"},
		Message{Role: RoleAssistant, Content: "answer"},
	)
	require.NoError(t, err)

	n, err := s.Length(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryStoreSessionIsolation(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "a", Message{Role: RoleUser, Content: "for a"}))
	require.NoError(t, s.Append(ctx, "b", Message{Role: RoleUser, Content: "for b"}))

	msgs, err := s.ReadRecent(ctx, "a", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for a", msgs[0].Content)
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, "s1", Message{Role: RoleUser, Content: "hello"}))
	require.NoError(t, s.Clear(ctx, "s1"))

	msgs, err := s.ReadRecent(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	n, err := s.Length(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	s := NewMemoryConversationStore()

	msgs, err := s.ReadRecent(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemoryStoreExists(t *testing.T) {
	s := NewMemoryConversationStore()
	ctx := context.Background()

	ok, err := s.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Append(ctx, "s1", Message{Role: RoleUser, Content: "hello"}))

	ok, err = s.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Clear(ctx, "s1"))
	ok, err = s.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}
