package cronmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobs(t *testing.T) {
	cm := NewCronManager(JobRegistry{
		"purge": {Func: func() {}, Schedule: "@every 1m"},
	})
	require.NoError(t, cm.LoadJobs())
	assert.Equal(t, []string{"purge"}, cm.Scheduled())

	// повторная загрузка не дублирует задачи
	require.NoError(t, cm.LoadJobs())
	assert.Len(t, cm.Scheduled(), 1)

	cm.RemoveJob("purge")
	assert.Empty(t, cm.Scheduled())
}

func TestLoadJobsInvalid(t *testing.T) {
	cm := NewCronManager(JobRegistry{
		"bad":    {Func: func() {}, Schedule: "not a schedule"},
		"nofunc": {Schedule: "@every 1m"},
		"ok":     {Func: func() {}, Schedule: "*/5 * * * *"},
	})
	assert.Error(t, cm.LoadJobs())
	assert.Equal(t, []string{"ok"}, cm.Scheduled())
}

func TestStartStop(t *testing.T) {
	cm := NewCronManager(JobRegistry{})
	require.NoError(t, cm.LoadJobs())
	cm.Start()
	cm.Stop()
}

func TestLoggedJob(t *testing.T) {
	calls := 0
	logged("purge", func() { calls++ })()
	assert.Equal(t, 1, calls)
}
