package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedrawSchedulerStartsClean(t *testing.T) {
	s := NewRedrawScheduler()
	assert.False(t, s.ShouldDraw())
}

func TestRedrawSchedulerCoalesces(t *testing.T) {
	s := NewRedrawScheduler()

	s.QueueNextFrame()
	s.QueueNextFrame()
	s.QueueNextFrame()

	assert.True(t, s.ShouldDraw())
	assert.False(t, s.ShouldDraw())
	assert.False(t, s.ShouldDraw())
}

func TestRedrawSchedulerRequeues(t *testing.T) {
	s := NewRedrawScheduler()

	s.QueueNextFrame()
	assert.True(t, s.ShouldDraw())

	s.QueueNextFrame()
	assert.True(t, s.ShouldDraw())
	assert.False(t, s.ShouldDraw())
}
