package domain_test

import (
	"testing"

	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/stretchr/testify/require"
)

func TestPayment(t *testing.T) {
	preimage := lntypes.Preimage{0x01, 0x02}
	hash := preimage.Hash()
	secret := [32]byte{0x03}

	t.Run("valid", func(t *testing.T) {
		payment := domain.NewPayment(hash, &preimage, &secret, 1000, "bolt11_invoice")
		require.NoError(t, payment.Validate())
		require.NotZero(t, payment.Timestamp)
		require.Equal(t, uint64(1000), payment.AmountMsat)

		payment = domain.NewPayment(hash, nil, &secret, 1000, "bolt12_offer")
		require.NoError(t, payment.Validate())
	})

	t.Run("invalid", func(t *testing.T) {
		wrongPreimage := lntypes.Preimage{0xff}

		fixtures := []struct {
			payment     domain.Payment
			expectedErr string
		}{
			{
				payment:     domain.NewPayment(lntypes.Hash{}, nil, nil, 1000, "spontaneous"),
				expectedErr: "missing payment hash",
			},
			{
				payment:     domain.NewPayment(hash, &preimage, nil, 1000, ""),
				expectedErr: "missing payment purpose",
			},
			{
				payment:     domain.NewPayment(hash, &wrongPreimage, nil, 1000, "spontaneous"),
				expectedErr: "preimage does not match payment hash " + hash.String(),
			},
		}

		for _, f := range fixtures {
			require.EqualError(t, f.payment.Validate(), f.expectedErr)
		}
	})
}
