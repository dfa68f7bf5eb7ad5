package jobs

import (
	"context"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWarmer struct {
	calls int
}

func (f *fakeWarmer) WarmCurrent(ctx context.Context) error {
	f.calls++
	return nil
}

func TestInitCronJobsProgramaElPrecalentado(t *testing.T) {
	c := cron.New()
	defer c.Stop()

	warmer := &fakeWarmer{}
	require.NoError(t, InitCronJobs(c, warmer, nil, nil))

	assert.Len(t, c.Entries(), 1)
	assert.Zero(t, warmer.calls, "el job corre por horario, no al programarse")
}
