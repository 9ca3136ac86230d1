package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"buddyai/internal/auth"
	"buddyai/internal/service"
	"buddyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	st := testutil.NewTestStore(t)

	roadmaps := service.NewRoadmapService(st)
	stats := service.NewStatsService(st)

	return &App{
		Tasks:         service.NewTaskService(st),
		Roadmaps:      roadmaps,
		Notes:         service.NewNoteService(st),
		Sessions:      service.NewSessionService(st),
		Stats:         stats,
		Settings:      service.NewSettingsService(st),
		Chat:          service.NewChatService(st, roadmaps, stats, zap.NewNop()),
		Auth:          auth.NewManager(filepath.Join(t.TempDir(), "session.json")),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "buddyai")
}

// --- task commands ---

func TestTaskAddCmd_CreatesTask(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "Read chapter 3", "--priority", "High", "--due", "2026-09-30")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Read chapter 3", tasks[0].Title)
	assert.Equal(t, "High", string(tasks[0].Priority))
	require.NotNil(t, tasks[0].DueDate)
}

func TestTaskAddCmd_NoTitleNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestTaskAddCmd_BadDueDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "x", "--due", "tomorrow")
	assert.Error(t, err)
}

func TestTaskDoneCmd_TogglesByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Write summary")
	require.NoError(t, app.Tasks.Create(ctx, task))

	_, err := executeCmd(t, app, "task", "done", task.ID[:8])
	require.NoError(t, err)

	got, err := app.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
}

func TestTaskShowCmd_ByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Review pull request", testutil.WithPriority("High"))
	require.NoError(t, app.Tasks.Create(ctx, task))

	_, err := executeCmd(t, app, "task", "show", task.ID[:8])
	require.NoError(t, err)

	_, err = executeCmd(t, app, "task", "show", "missing")
	assert.Error(t, err)
}

func TestTaskListCmd_RejectsUnknownStatus(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "list", "--status", "archived")
	assert.Error(t, err)
}

func TestTaskRemoveCmd_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "rm", "nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- roadmap commands ---

func TestRoadmapTasksCmd_GeneratesTasks(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r := testutil.NewTestRoadmap("Go Learning Path", 3)
	require.NoError(t, app.Roadmaps.Create(ctx, r))

	_, err := executeCmd(t, app, "roadmap", "tasks", r.ID[:8])
	require.NoError(t, err)

	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestRoadmapStepCmd_CompletesStep(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	r := testutil.NewTestRoadmap("Go Learning Path", 2)
	require.NoError(t, app.Roadmaps.Create(ctx, r))

	_, err := executeCmd(t, app, "roadmap", "step", r.ID, r.Steps[0].ID)
	require.NoError(t, err)

	got, err := app.Roadmaps.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Steps[0].Completed)
	assert.Equal(t, 50, got.Progress)
}

// --- chat command ---

func TestChatCmd_OneShotCreatesRoadmap(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "chat",
		"I want to learn Python in 3 months at Beginner level with 2 hours per day")
	require.NoError(t, err)

	roadmaps, err := app.Roadmaps.List(ctx)
	require.NoError(t, err)
	require.Len(t, roadmaps, 1)

	tasks, err := app.Tasks.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tasks)
}

func TestChatCmd_NoArgsNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

// --- focus commands ---

func TestFocusLogCmd_RecordsSession(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "focus", "log", "--minutes", "30")
	require.NoError(t, err)

	total, err := app.Sessions.TotalMinutes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 30, total)
}

func TestFocusLogCmd_RejectsNonPositive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "focus", "log", "--minutes", "0")
	assert.Error(t, err)
}

// --- settings commands ---

func TestSettingsSetCmd_UpdatesFields(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "--bot-name", "Nova", "--gamification", "off")
	require.NoError(t, err)

	s, err := app.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nova", s.BotName)
	assert.False(t, s.Gamification)
}

func TestSettingsSetCmd_RejectsBadToggle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "--reminders", "maybe")
	assert.Error(t, err)
}

// --- auth commands ---

func TestAuthLoginLogout(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "auth", "login", "user-123", "--email", "u@example.com")
	require.NoError(t, err)

	s, err := app.Auth.Current()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "user-123", s.UserID)

	_, err = executeCmd(t, app, "auth", "logout")
	require.NoError(t, err)

	s, err = app.Auth.Current()
	require.NoError(t, err)
	assert.Nil(t, s)
}
