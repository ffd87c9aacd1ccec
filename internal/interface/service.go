package service_interface

import (
	"fmt"

	appconfig "github.com/lampo-network/lampod/internal/app-config"
	"github.com/lampo-network/lampod/internal/config"
	"github.com/lampo-network/lampod/internal/core/application"
	"github.com/lampo-network/lampod/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Start() error
	Stop()
	// Dispatcher is nil until the service is started.
	Dispatcher() application.Service
}

// Engine groups the collaborators provided by the node engine.
type Engine struct {
	Wallet    ports.WalletService
	Channels  ports.ChannelService
	Peers     ports.PeerService
	Inventory ports.InventoryService
	Chain     ports.ChainService
}

type service struct {
	appConfig *appconfig.Config
	svc       application.Service
}

func NewService(cfg *config.Config, engine Engine) (Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing config")
	}

	log.SetLevel(log.Level(cfg.LogLevel))

	appConfig := &appconfig.Config{
		DbType:            cfg.DbType,
		DbDir:             cfg.DbDir,
		SchedulerType:     cfg.SchedulerType,
		EventSinkType:     cfg.EventSinkType,
		EsploraURL:        cfg.EsploraURL,
		EventBufferSize:   cfg.EventBufferSize,
		FundingConfTarget: cfg.FundingConfTarget,
		Wallet:            engine.Wallet,
		Channels:          engine.Channels,
		Peers:             engine.Peers,
		Inventory:         engine.Inventory,
		Chain:             engine.Chain,
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %s", err)
	}

	return &service{appConfig: appConfig}, nil
}

func (s *service) Start() error {
	svc, err := s.appConfig.AppService()
	if err != nil {
		return err
	}
	s.svc = svc

	log.Info("dispatcher started")
	return nil
}

func (s *service) Stop() {
	s.appConfig.Close()
	log.Info("dispatcher stopped")
}

func (s *service) Dispatcher() application.Service {
	return s.svc
}
