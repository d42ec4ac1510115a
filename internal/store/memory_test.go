package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewfesta/Wordle-Clone/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	a, err := game.New("ALLOW", game.WithID("a"))
	require.NoError(t, err)
	b, err := game.New("WORDS", game.WithID("b"))
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, b))
	require.NoError(t, s.Save(ctx, a))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, a, got)

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Delete(ctx, "missing"))
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a, _ := game.New("ALLOW", game.WithID("a"))
	b, _ := game.New("WORDS", game.WithID("b"))
	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))

	ga, _ := s.Get(ctx, "a")
	ga.AppendLetter('x')
	gb, _ := s.Get(ctx, "b")
	assert.Equal(t, "X", ga.Guess())
	assert.Equal(t, "", gb.Guess())
}
