package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	C, P, A := Correct, Present, Absent
	cases := []struct {
		name   string
		guess  string
		secret string
		want   []Classification
	}{
		{"exact match", "CRANE", "CRANE", []Classification{C, C, C, C, C}},
		{"nothing in common", "BUMPY", "CRANE", []Classification{A, A, A, A, A}},
		{"duplicate guess letters, two in secret", "LOLLY", "ALLOW", []Classification{P, P, C, A, A}},
		{"rotation", "SWORD", "WORDS", []Classification{P, P, P, P, P}},
		{"exact match keeps its own copy", "EERIE", "THERE", []Classification{P, A, P, A, C}},
		{"single copy claimed by first duplicate", "SPEED", "ABIDE", []Classification{A, A, P, A, P}},
		{"present claimed left to right", "ABBEY", "BABES", []Classification{P, P, C, C, A}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.guess, tc.secret))
		})
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	got := Score("CAT", "CRANE")
	assert.Len(t, got, 5)
	for _, c := range got {
		assert.Equal(t, Absent, c)
	}
}

func TestScoreSelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"ALLOW", "WORDS", "MAMMA", "EERIE", "QUEUE"} {
		assert.True(t, AllCorrect(Score(w, w)), w)
	}
}

func TestAllCorrect(t *testing.T) {
	assert.False(t, AllCorrect(nil))
	assert.False(t, AllCorrect([]Classification{Correct, Present}))
	assert.True(t, AllCorrect([]Classification{Correct, Correct}))
}
