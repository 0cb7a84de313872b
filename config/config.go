package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Chain     ChainConfigs
}

func (c Configs) IsProduction() bool {
	return c.Env == "production"
}

type ServerConfigs struct {
	Host string
	Port string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	SSLMode  string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Database,
		d.SSLMode,
	)
}

type RedisConfigs struct {
	// Addr is the redis address. An empty value disables the cache layer
	// entirely; every read goes straight to the database.
	Addr string
}

// ChainConfigs describes the contract whose task-logged events are mirrored
// into the store. The fields carry toml tags so a chain file can override
// the environment defaults.
type ChainConfigs struct {
	ContractAddress string `toml:"contract_address"`
	ContractName    string `toml:"contract_name"`
	APIURL          string `toml:"api_url"`
	PollSeconds     int    `toml:"poll_seconds"`
	BatchSize       int    `toml:"batch_size"`
}

func (c ChainConfigs) ContractID() string {
	return fmt.Sprintf("%s.%s", c.ContractAddress, c.ContractName)
}

func (c ChainConfigs) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(c.PollSeconds) * time.Second
}
