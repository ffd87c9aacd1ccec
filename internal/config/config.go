package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
)

type Config struct {
	Datadir           string
	DbDir             string
	LogLevel          int
	EsploraURL        string
	DbType            string
	SchedulerType     string
	EventSinkType     string
	EventBufferSize   int
	FundingConfTarget uint32
}

var (
	Datadir           = "DATADIR"
	LogLevel          = "LOG_LEVEL"
	EsploraURL        = "ESPLORA_URL"
	DbType            = "DB_TYPE"
	SchedulerType     = "SCHEDULER_TYPE"
	EventSinkType     = "EVENT_SINK_TYPE"
	EventBufferSize   = "EVENT_BUFFER_SIZE"
	FundingConfTarget = "FUNDING_CONF_TARGET"

	defaultDatadir           = btcutil.AppDataDir("lampod", false)
	defaultLogLevel          = 4
	defaultEsploraURL        = "https://blockstream.info/api"
	defaultDbType            = "badger"
	defaultSchedulerType     = "gocron"
	defaultEventSinkType     = "gochannel"
	defaultEventBufferSize   = 64
	defaultFundingConfTarget = 6
)

func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix("LAMPOD")
	viper.AutomaticEnv()

	viper.SetDefault(Datadir, defaultDatadir)
	viper.SetDefault(LogLevel, defaultLogLevel)
	viper.SetDefault(EsploraURL, defaultEsploraURL)
	viper.SetDefault(DbType, defaultDbType)
	viper.SetDefault(SchedulerType, defaultSchedulerType)
	viper.SetDefault(EventSinkType, defaultEventSinkType)
	viper.SetDefault(EventBufferSize, defaultEventBufferSize)
	viper.SetDefault(FundingConfTarget, defaultFundingConfTarget)

	if err := initDatadir(); err != nil {
		return nil, fmt.Errorf("error while creating datadir: %s", err)
	}

	datadir := viper.GetString(Datadir)
	cfg := &Config{
		Datadir:           datadir,
		DbDir:             filepath.Join(datadir, "db"),
		LogLevel:          viper.GetInt(LogLevel),
		EsploraURL:        viper.GetString(EsploraURL),
		DbType:            viper.GetString(DbType),
		SchedulerType:     viper.GetString(SchedulerType),
		EventSinkType:     viper.GetString(EventSinkType),
		EventBufferSize:   viper.GetInt(EventBufferSize),
		FundingConfTarget: viper.GetUint32(FundingConfTarget),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.EsploraURL) <= 0 {
		return fmt.Errorf("missing esplora url")
	}
	if c.EventBufferSize < 0 {
		return fmt.Errorf("event buffer size must not be negative")
	}
	return nil
}

func initDatadir() error {
	datadir := viper.GetString(Datadir)
	return makeDirectoryIfNotExists(datadir)
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
