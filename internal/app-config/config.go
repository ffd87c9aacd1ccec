package appconfig

import (
	"fmt"
	"strings"

	"github.com/lampo-network/lampod/internal/core/application"
	"github.com/lampo-network/lampod/internal/core/ports"
	esploraservice "github.com/lampo-network/lampod/internal/infrastructure/chain/esplora"
	"github.com/lampo-network/lampod/internal/infrastructure/db"
	watermillsink "github.com/lampo-network/lampod/internal/infrastructure/event-sink/watermill"
	scheduler "github.com/lampo-network/lampod/internal/infrastructure/scheduler/gocron"
	"github.com/lampo-network/lampod/internal/interface/handlers"
	log "github.com/sirupsen/logrus"
)

var (
	supportedDbs = supportedType{
		"badger":   {},
		"inmemory": {},
	}
	supportedSchedulers = supportedType{
		"gocron": {},
		"none":   {},
	}
	supportedEventSinks = supportedType{
		"gochannel": {},
		"none":      {},
	}
)

// Config is the composition root of the dispatcher. The node engine
// collaborators (wallet, channels, peers, inventory) are given by the caller,
// everything else is built from the configured types.
type Config struct {
	DbType            string
	DbDir             string
	SchedulerType     string
	EventSinkType     string
	EsploraURL        string
	EventBufferSize   int
	FundingConfTarget uint32

	Wallet    ports.WalletService
	Channels  ports.ChannelService
	Peers     ports.PeerService
	Inventory ports.InventoryService
	// Chain overrides the esplora fee estimator if set.
	Chain ports.ChainService

	repo      ports.RepoManager
	scheduler ports.SchedulerService
	chain     ports.ChainService
	sink      ports.EventSink
	sinkSubID string
	svc       application.Service
}

func (c *Config) Validate() error {
	if !supportedDbs.supports(c.DbType) {
		return fmt.Errorf("db type not supported, please select one of: %s", supportedDbs)
	}
	if !supportedSchedulers.supports(c.SchedulerType) {
		return fmt.Errorf("scheduler type not supported, please select one of: %s", supportedSchedulers)
	}
	if !supportedEventSinks.supports(c.EventSinkType) {
		return fmt.Errorf("event sink type not supported, please select one of: %s", supportedEventSinks)
	}
	if c.EventBufferSize < 0 {
		return fmt.Errorf("invalid event buffer size, must not be negative")
	}
	if c.Wallet == nil {
		return fmt.Errorf("missing wallet service")
	}
	if c.Channels == nil {
		return fmt.Errorf("missing channel service")
	}
	if c.Chain == nil && len(c.EsploraURL) <= 0 {
		return fmt.Errorf("missing esplora url")
	}

	if err := c.repoManager(); err != nil {
		return err
	}
	if err := c.schedulerService(); err != nil {
		return err
	}
	if err := c.chainService(); err != nil {
		return err
	}
	if err := c.eventSink(); err != nil {
		return err
	}
	return nil
}

func (c *Config) AppService() (application.Service, error) {
	if c.svc == nil {
		if err := c.appService(); err != nil {
			return nil, err
		}
	}
	return c.svc, nil
}

func (c *Config) RepoManager() ports.RepoManager {
	return c.repo
}

// Close shuts the dispatcher down, then flushes the event sink and closes the
// payment store.
func (c *Config) Close() {
	if c.svc != nil {
		if c.sink != nil {
			c.svc.Unsubscribe(c.sinkSubID)
		}
		c.svc.Close()
	} else if c.scheduler != nil {
		c.scheduler.Stop()
	}
	if c.sink != nil {
		c.sink.Close()
	}
	if c.repo != nil {
		c.repo.Close()
	}
}

func (c *Config) repoManager() error {
	var dataStoreConfig []interface{}
	logger := log.New()

	switch c.DbType {
	case "badger":
		dataStoreConfig = []interface{}{c.DbDir, logger}
	case "inmemory":
		dataStoreConfig = []interface{}{"", logger}
	default:
		return fmt.Errorf("unknown db type")
	}

	svc, err := db.NewService(db.ServiceConfig{
		DataStoreType:   "badger",
		DataStoreConfig: dataStoreConfig,
	})
	if err != nil {
		return err
	}

	c.repo = svc
	return nil
}

func (c *Config) schedulerService() error {
	switch c.SchedulerType {
	case "gocron":
		c.scheduler = scheduler.NewScheduler()
	case "none":
	default:
		return fmt.Errorf("unknown scheduler type")
	}
	return nil
}

func (c *Config) chainService() error {
	if c.Chain != nil {
		c.chain = c.Chain
		return nil
	}

	svc, err := esploraservice.NewService(c.EsploraURL)
	if err != nil {
		return err
	}

	c.chain = svc
	return nil
}

func (c *Config) eventSink() error {
	switch c.EventSinkType {
	case "gochannel":
		bufferSize := int64(c.EventBufferSize)
		c.sink = watermillsink.NewService(watermillsink.NewGoChannelPubSub(bufferSize))
	case "none":
	default:
		return fmt.Errorf("unknown event sink type")
	}
	return nil
}

func (c *Config) appService() error {
	if c.repo == nil || c.chain == nil {
		return fmt.Errorf("config not validated")
	}

	svc, err := application.NewService(
		c.FundingConfTarget, c.EventBufferSize,
		c.chain, c.Wallet, c.Channels, c.scheduler, c.repo,
	)
	if err != nil {
		return err
	}

	svc.RegisterExternalHandler(
		handlers.NewHandler(c.Inventory, c.Peers, c.repo.Payments()),
	)

	if c.sink != nil {
		id, events := svc.Subscribe()
		c.sink.Forward(events)
		c.sinkSubID = id
	}

	c.svc = svc
	return nil
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return strings.Join(types, " | ")
}

func (t supportedType) supports(typeStr string) bool {
	_, ok := t[typeStr]
	return ok
}
