package ports

import "github.com/lampo-network/lampod/internal/core/domain"

type RepoManager interface {
	Payments() domain.PaymentRepository
	Close()
}
