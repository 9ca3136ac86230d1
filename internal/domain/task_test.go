package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestTaskToggle_CompletesAndReverts(t *testing.T) {
	task := NewTask("t1", "Read chapter")

	task.Toggle(testNow)
	assert.True(t, task.Done)
	assert.Equal(t, TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, testNow, *task.CompletedAt)
	require.NoError(t, task.Validate())

	task.Toggle(testNow.Add(time.Hour))
	assert.False(t, task.Done)
	assert.Equal(t, TaskActive, task.Status)
	assert.Nil(t, task.CompletedAt)
	require.NoError(t, task.Validate())
}

func TestTaskComplete_Idempotent(t *testing.T) {
	task := NewTask("t1", "Exercises")
	task.Complete(testNow)
	first := *task.CompletedAt

	task.Complete(testNow.Add(time.Hour))
	assert.Equal(t, first, *task.CompletedAt, "second complete must not move the timestamp")
}

func TestTaskComplete_ClearsPause(t *testing.T) {
	task := NewTask("t1", "Revise notes")
	task.Pause(testNow)
	require.NotNil(t, task.PausedAt)

	task.Complete(testNow.Add(time.Hour))
	assert.Nil(t, task.PausedAt)
	assert.Equal(t, TaskCompleted, task.Status)
}

func TestTaskSetStatus(t *testing.T) {
	cases := []struct {
		status     TaskStatus
		wantDone   bool
		wantPaused bool
	}{
		{TaskCompleted, true, false},
		{TaskPaused, false, true},
		{TaskActive, false, false},
	}
	for _, tc := range cases {
		task := NewTask("t1", "Task")
		task.SetStatus(tc.status, testNow)
		assert.Equal(t, tc.status, task.Status)
		assert.Equal(t, tc.wantDone, task.Done, "status=%s", tc.status)
		assert.Equal(t, tc.wantPaused, task.PausedAt != nil, "status=%s", tc.status)
		require.NoError(t, task.Validate())
	}
}

func TestTaskValidate_RejectsHalfLinkedTask(t *testing.T) {
	task := NewTask("t1", "Orphan")
	task.RoadmapID = "r1"
	assert.Error(t, task.Validate())

	task.RoadmapStepID = "s1"
	assert.NoError(t, task.Validate())
}

func TestTaskValidate_DoneStatusMismatch(t *testing.T) {
	task := NewTask("t1", "Task")
	task.Done = true // status still active
	assert.Error(t, task.Validate())
}
