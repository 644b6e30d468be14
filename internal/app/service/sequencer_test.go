package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerLatestWins(t *testing.T) {
	s := newSequencer()
	older := s.begin("k")
	newer := s.begin("k")

	var stored []uint64
	assert.True(t, s.commit("k", newer, func() { stored = append(stored, newer) }))
	assert.False(t, s.commit("k", older, func() { stored = append(stored, older) }))
	assert.Equal(t, []uint64{newer}, stored)
}

func TestSequencerKeysAreIndependent(t *testing.T) {
	s := newSequencer()
	a := s.begin("a")
	_ = s.begin("b")
	b2 := s.begin("b")

	assert.True(t, s.commit("b", b2, func() {}))
	assert.True(t, s.commit("a", a, func() {}))
}

func TestSequencerInOrderCommits(t *testing.T) {
	s := newSequencer()
	first := s.begin("k")
	assert.True(t, s.commit("k", first, func() {}))
	second := s.begin("k")
	assert.True(t, s.commit("k", second, func() {}))
}

func TestSequencerForgetsSettledKeys(t *testing.T) {
	s := newSequencer()
	for i := 0; i < 5000; i++ {
		key := "year:" + strconv.Itoa(i)
		tok := s.begin(key)
		if i%2 == 0 {
			s.commit(key, tok, func() {})
		} else {
			s.abandon(key)
		}
	}
	assert.Equal(t, 0, s.tracked())
}

func TestSequencerKeepsKeyWhileInFlight(t *testing.T) {
	s := newSequencer()
	older := s.begin("k")
	newer := s.begin("k")
	assert.True(t, s.commit("k", newer, func() {}))
	assert.Equal(t, 1, s.tracked())
	assert.False(t, s.commit("k", older, func() {}))
	assert.Equal(t, 0, s.tracked())
}
