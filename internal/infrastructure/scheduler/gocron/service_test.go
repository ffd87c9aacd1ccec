package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	scheduler "github.com/lampo-network/lampod/internal/infrastructure/scheduler/gocron"
	"github.com/stretchr/testify/require"
)

func TestScheduleTaskOnce(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := scheduler.NewScheduler()
		svc.Start()
		defer svc.Stop()

		var runs int32
		err := svc.ScheduleTaskOnce(50*time.Millisecond, func() {
			atomic.AddInt32(&runs, 1)
		})
		require.NoError(t, err)
		require.Zero(t, atomic.LoadInt32(&runs))

		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&runs) == 1
		}, 2*time.Second, 10*time.Millisecond)

		time.Sleep(200 * time.Millisecond)
		require.Equal(t, int32(1), atomic.LoadInt32(&runs))
	})

	t.Run("invalid", func(t *testing.T) {
		svc := scheduler.NewScheduler()

		fixtures := []struct {
			delay       time.Duration
			expectedErr string
		}{
			{
				delay:       0,
				expectedErr: "cannot schedule task in the past",
			},
			{
				delay:       -time.Second,
				expectedErr: "cannot schedule task in the past",
			},
		}

		for _, f := range fixtures {
			err := svc.ScheduleTaskOnce(f.delay, func() {})
			require.EqualError(t, err, f.expectedErr)
		}
	})
}
