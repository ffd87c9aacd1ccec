package application

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/lightningnetwork/lnd/lnwallet/chainfee"
	"github.com/lightningnetwork/lnd/lnwire"
	"github.com/stretchr/testify/mock"
)

type mockedChain struct {
	mock.Mock
}

func (m *mockedChain) EstimateFeeRate(
	ctx context.Context, targetBlocks uint32,
) (chainfee.SatPerVByte, error) {
	args := m.Called(ctx, targetBlocks)

	var res chainfee.SatPerVByte
	if a := args.Get(0); a != nil {
		res = a.(chainfee.SatPerVByte)
	}
	return res, args.Error(1)
}

type mockedWallet struct {
	mock.Mock
}

func (m *mockedWallet) BuildFundingTransaction(
	ctx context.Context, outputScript []byte, amount btcutil.Amount,
	feeRate chainfee.SatPerVByte,
) (*wire.MsgTx, error) {
	args := m.Called(ctx, outputScript, amount, feeRate)

	var res *wire.MsgTx
	if a := args.Get(0); a != nil {
		res = a.(*wire.MsgTx)
	}
	return res, args.Error(1)
}

type mockedChannels struct {
	mock.Mock
}

func (m *mockedChannels) FinalizeFunding(
	temporaryChannelID lnwire.ChannelID, counterparty *btcec.PublicKey,
	fundingTx *wire.MsgTx,
) error {
	args := m.Called(temporaryChannelID, counterparty, fundingTx)
	return args.Error(0)
}

func (m *mockedChannels) ClaimFunds(preimage lntypes.Preimage) {
	m.Called(preimage)
}

func (m *mockedChannels) ProcessPendingHTLCForwards() {
	m.Called()
}

type mockedScheduler struct {
	mock.Mock
}

func (m *mockedScheduler) Start() {
	m.Called()
}

func (m *mockedScheduler) Stop() {
	m.Called()
}

func (m *mockedScheduler) ScheduleTaskOnce(delay time.Duration, task func()) error {
	args := m.Called(delay, task)
	return args.Error(0)
}

type mockedRepoManager struct {
	payments *mockedPaymentRepo
}

func (m *mockedRepoManager) Payments() domain.PaymentRepository {
	return m.payments
}

func (m *mockedRepoManager) Close() {}

type mockedPaymentRepo struct {
	mock.Mock
}

func (m *mockedPaymentRepo) Add(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockedPaymentRepo) Get(
	ctx context.Context, hash lntypes.Hash,
) (*domain.Payment, error) {
	args := m.Called(ctx, hash)

	var res *domain.Payment
	if a := args.Get(0); a != nil {
		res = a.(*domain.Payment)
	}
	return res, args.Error(1)
}

func (m *mockedPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)

	var res []domain.Payment
	if a := args.Get(0); a != nil {
		res = a.([]domain.Payment)
	}
	return res, args.Error(1)
}

func (m *mockedPaymentRepo) Close() {
	m.Called()
}
