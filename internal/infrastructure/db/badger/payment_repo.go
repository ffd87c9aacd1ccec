package badgerdb

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lightningnetwork/lnd/lntypes"
	"github.com/timshannon/badgerhold/v4"
)

const paymentStoreDir = "payments"

type paymentRepository struct {
	store *badgerhold.Store
	lock  *sync.Mutex
}

// payments are stored with their identifiers in hex form, empty strings
// stand for unknown preimage or secret.
type paymentDTO struct {
	Hash       string
	Preimage   string
	Secret     string
	AmountMsat uint64
	Purpose    string
	Timestamp  int64
}

func NewPaymentRepository(config ...interface{}) (domain.PaymentRepository, error) {
	if len(config) != 2 {
		return nil, fmt.Errorf("invalid config")
	}
	baseDir, ok := config[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid base directory")
	}

	var logger badger.Logger
	if config[1] != nil {
		logger, ok = config[1].(badger.Logger)
		if !ok {
			return nil, fmt.Errorf("invalid logger")
		}
	}

	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, paymentStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open payment store: %s", err)
	}
	lock := &sync.Mutex{}
	return &paymentRepository{store, lock}, nil
}

func (r *paymentRepository) Close() {
	// nolint:all
	r.store.Close()
}

// Add stores the payment, claimed payments redelivered by the engine
// overwrite the previous record.
func (r *paymentRepository) Add(ctx context.Context, payment domain.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	dto := toPaymentDTO(payment)
	return r.store.Upsert(dto.Hash, dto)
}

func (r *paymentRepository) Get(
	ctx context.Context, hash lntypes.Hash,
) (*domain.Payment, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	var dto paymentDTO
	if err := r.store.Get(hash.String(), &dto); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("payment %s not found", hash)
		}
		return nil, err
	}

	return dto.toPayment()
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	dtos := make([]paymentDTO, 0)
	if err := r.store.Find(&dtos, nil); err != nil {
		return nil, err
	}
	sort.SliceStable(dtos, func(i, j int) bool {
		return dtos[i].Timestamp < dtos[j].Timestamp
	})

	payments := make([]domain.Payment, 0, len(dtos))
	for _, dto := range dtos {
		payment, err := dto.toPayment()
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func toPaymentDTO(payment domain.Payment) paymentDTO {
	dto := paymentDTO{
		Hash:       payment.Hash.String(),
		AmountMsat: payment.AmountMsat,
		Purpose:    payment.Purpose,
		Timestamp:  payment.Timestamp,
	}
	if payment.Preimage != nil {
		dto.Preimage = payment.Preimage.String()
	}
	if payment.Secret != nil {
		dto.Secret = hex.EncodeToString(payment.Secret[:])
	}
	return dto
}

func (d paymentDTO) toPayment() (*domain.Payment, error) {
	hash, err := lntypes.MakeHashFromStr(d.Hash)
	if err != nil {
		return nil, fmt.Errorf("invalid stored payment hash: %s", err)
	}

	payment := &domain.Payment{
		Hash:       hash,
		AmountMsat: d.AmountMsat,
		Purpose:    d.Purpose,
		Timestamp:  d.Timestamp,
	}
	if len(d.Preimage) > 0 {
		preimage, err := lntypes.MakePreimageFromStr(d.Preimage)
		if err != nil {
			return nil, fmt.Errorf("invalid stored preimage for %s: %s", hash, err)
		}
		payment.Preimage = &preimage
	}
	if len(d.Secret) > 0 {
		buf, err := hex.DecodeString(d.Secret)
		if err != nil || len(buf) != 32 {
			return nil, fmt.Errorf("invalid stored payment secret for %s", hash)
		}
		var secret [32]byte
		copy(secret[:], buf)
		payment.Secret = &secret
	}
	return payment, nil
}
