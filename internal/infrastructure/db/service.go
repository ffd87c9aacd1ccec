package db

import (
	"fmt"

	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lampo-network/lampod/internal/core/ports"
	badgerdb "github.com/lampo-network/lampod/internal/infrastructure/db/badger"
)

var (
	paymentStoreTypes = map[string]func(...interface{}) (domain.PaymentRepository, error){
		"badger": badgerdb.NewPaymentRepository,
	}
)

type ServiceConfig struct {
	DataStoreType string

	DataStoreConfig []interface{}
}

type service struct {
	paymentStore domain.PaymentRepository
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	paymentStoreFactory, ok := paymentStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}

	paymentStore, err := paymentStoreFactory(config.DataStoreConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment store: %w", err)
	}

	return &service{paymentStore}, nil
}

func (s *service) Payments() domain.PaymentRepository {
	return s.paymentStore
}

func (s *service) Close() {
	s.paymentStore.Close()
}
