package esplora_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lampo-network/lampod/internal/infrastructure/chain/esplora"
	"github.com/lightningnetwork/lnd/lnwallet/chainfee"
	"github.com/stretchr/testify/require"
)

func newEsploraServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/fee-estimates" {
				http.NotFound(w, r)
				return
			}
			w.WriteHeader(status)
			// nolint:all
			w.Write([]byte(body))
		},
	))
	t.Cleanup(server.Close)
	return server
}

func TestEstimateFeeRate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		server := newEsploraServer(
			t, http.StatusOK, `{"1": 20.5, "6": 5, "144": 1.2}`,
		)
		svc, err := esplora.NewService(server.URL)
		require.NoError(t, err)

		fixtures := []struct {
			targetBlocks    uint32
			expectedFeeRate chainfee.SatPerVByte
		}{
			{
				targetBlocks:    1,
				expectedFeeRate: 20,
			},
			{
				targetBlocks:    6,
				expectedFeeRate: 5,
			},
			{
				targetBlocks:    144,
				expectedFeeRate: 1,
			},
		}

		for _, f := range fixtures {
			feeRate, err := svc.EstimateFeeRate(context.Background(), f.targetBlocks)
			require.NoError(t, err)
			require.Equal(t, f.expectedFeeRate, feeRate)
		}
	})

	t.Run("missing target", func(t *testing.T) {
		server := newEsploraServer(t, http.StatusOK, `{"2": 30, "10": 8}`)
		svc, err := esplora.NewService(server.URL)
		require.NoError(t, err)

		fixtures := []struct {
			description     string
			targetBlocks    uint32
			expectedFeeRate chainfee.SatPerVByte
		}{
			{
				description:     "closest lower target",
				targetBlocks:    6,
				expectedFeeRate: 30,
			},
			{
				description:     "closest higher target",
				targetBlocks:    1,
				expectedFeeRate: 30,
			},
			{
				description:     "target above the maximum",
				targetBlocks:    5000,
				expectedFeeRate: 8,
			},
		}

		for _, f := range fixtures {
			t.Run(f.description, func(t *testing.T) {
				feeRate, err := svc.EstimateFeeRate(context.Background(), f.targetBlocks)
				require.NoError(t, err)
				require.Equal(t, f.expectedFeeRate, feeRate)
			})
		}
	})

	t.Run("fee floor", func(t *testing.T) {
		server := newEsploraServer(t, http.StatusOK, `{"6": 0.5}`)
		svc, err := esplora.NewService(server.URL)
		require.NoError(t, err)

		feeRate, err := svc.EstimateFeeRate(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, chainfee.FeePerKwFloor.FeePerVByte(), feeRate)
	})

	t.Run("concurrent calls keep their own outcome", func(t *testing.T) {
		var (
			lock     sync.Mutex
			requests int
		)
		failingReceived := make(chan struct{})
		releaseFailing := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				lock.Lock()
				requests++
				first := requests == 1
				lock.Unlock()

				if first {
					close(failingReceived)
					<-releaseFailing
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				// nolint:all
				w.Write([]byte(`{"6": 5}`))
			},
		))
		t.Cleanup(server.Close)

		svc, err := esplora.NewService(server.URL)
		require.NoError(t, err)

		failingErr := make(chan error, 1)
		go func() {
			_, err := svc.EstimateFeeRate(context.Background(), 6)
			failingErr <- err
		}()
		<-failingReceived

		feeRate, err := svc.EstimateFeeRate(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, chainfee.SatPerVByte(5), feeRate)

		close(releaseFailing)
		require.Error(t, <-failingErr)

		feeRate, err = svc.EstimateFeeRate(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, chainfee.SatPerVByte(5), feeRate)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Run("unreachable backend", func(t *testing.T) {
			server := newEsploraServer(t, http.StatusInternalServerError, "")
			svc, err := esplora.NewService(server.URL)
			require.NoError(t, err)

			feeRate, err := svc.EstimateFeeRate(context.Background(), 6)
			require.Error(t, err)
			require.Zero(t, feeRate)
		})

		t.Run("cancelled context", func(t *testing.T) {
			server := newEsploraServer(t, http.StatusOK, `{"6": 5}`)
			svc, err := esplora.NewService(server.URL)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err = svc.EstimateFeeRate(ctx, 6)
			require.ErrorIs(t, err, context.Canceled)
		})

		t.Run("conf target too low", func(t *testing.T) {
			server := newEsploraServer(t, http.StatusOK, `{"6": 5}`)
			svc, err := esplora.NewService(server.URL)
			require.NoError(t, err)

			feeRate, err := svc.EstimateFeeRate(context.Background(), 0)
			require.EqualError(t, err, "conf target of 0 is too low, minimum accepted is 1")
			require.Zero(t, feeRate)
		})

		t.Run("invalid url", func(t *testing.T) {
			svc, err := esplora.NewService("not an url")
			require.Error(t, err)
			require.Nil(t, svc)
		})
	})
}
