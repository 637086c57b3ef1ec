package cassandra

import (
	"context"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/spf13/pflag"

	"github.com/cqlpager/cqlpager/internal/xerrors"
	"github.com/cqlpager/cqlpager/log"
)

// Config for a Cassandra session
type Config struct {
	Addresses                string
	Port                     int
	Keyspace                 string
	Consistency              string
	DisableInitialHostLookup bool
	SSL                      bool
	HostVerification         bool
	CAPath                   string
	Auth                     bool
	Username                 string
	Password                 string
	Timeout                  time.Duration
	PageSize                 int
}

// RegisterFlags adds the flags required to config this to the given FlagSet
func (cfg *Config) RegisterFlags(f *pflag.FlagSet) {
	f.StringVar(&cfg.Addresses, "cassandra.addresses", "127.0.0.1", "Comma-separated hostnames or ips of Cassandra instances.")
	f.IntVar(&cfg.Port, "cassandra.port", 9042, "Port that Cassandra is running on.")
	f.StringVar(&cfg.Keyspace, "cassandra.keyspace", "", "Keyspace to use in Cassandra.")
	f.StringVar(&cfg.Consistency, "cassandra.consistency", "QUORUM", "Consistency level for Cassandra.")
	f.BoolVar(&cfg.DisableInitialHostLookup, "cassandra.disable-initial-host-lookup", false, "Instruct the cassandra driver to not attempt to get host info from the system.peers table.") //nolint:lll
	f.BoolVar(&cfg.SSL, "cassandra.ssl", false, "Use SSL when connecting to cassandra instances.")
	f.BoolVar(&cfg.HostVerification, "cassandra.host-verification", true, "Require SSL certificate validation.")
	f.StringVar(&cfg.CAPath, "cassandra.ca-path", "", "Path to certificate file to verify the peer.")
	f.BoolVar(&cfg.Auth, "cassandra.auth", false, "Enable password authentication when connecting to cassandra.")
	f.StringVar(&cfg.Username, "cassandra.username", "", "Username to use when connecting to cassandra.")
	f.StringVar(&cfg.Password, "cassandra.password", "", "Password to use when connecting to cassandra.")
	f.DurationVar(&cfg.Timeout, "cassandra.timeout", 600*time.Millisecond, "Timeout of Cassandra requests.")
	f.IntVar(&cfg.PageSize, "cassandra.page-size", DefaultPageSize, "Count of rows per fetched page.")
}

// Cluster makes cluster config from cfg
func (cfg *Config) Cluster() (*gocql.ClusterConfig, error) {
	consistency, err := gocql.ParseConsistencyWrapper(cfg.Consistency)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	cluster := gocql.NewCluster(strings.Split(cfg.Addresses, ",")...)
	cluster.Port = cfg.Port
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = consistency
	cluster.Timeout = cfg.Timeout
	cluster.DisableInitialHostLookup = cfg.DisableInitialHostLookup
	cluster.PageSize = cfg.PageSize

	if cfg.SSL {
		cluster.SslOpts = &gocql.SslOptions{
			CaPath:                 cfg.CAPath,
			EnableHostVerification: cfg.HostVerification,
		}
	}
	if cfg.Auth {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	return cluster, nil
}

// Session connects to cluster. Non-nil l logs every executed query.
func (cfg *Config) Session(l log.Logger) (*gocql.Session, error) {
	cluster, err := cfg.Cluster()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if l != nil {
		cluster.QueryObserver = observer{l: l}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return session, nil
}

var _ gocql.QueryObserver = observer{}

type observer struct {
	l log.Logger
}

func (o observer) ObserveQuery(ctx context.Context, q gocql.ObservedQuery) {
	ctx = log.WithNames(ctx, "cqlpager", "cassandra", "query")
	fields := []log.Field{
		log.String("keyspace", q.Keyspace),
		log.String("statement", q.Statement),
		log.Duration("latency", q.End.Sub(q.Start)),
		log.Int("rows", q.Rows),
		log.Int("attempt", q.Attempt),
	}
	if q.Host != nil {
		fields = append(fields, log.String("host", q.Host.ConnectAddressAndPort()))
	}
	if q.Err != nil {
		o.l.Log(log.WithLevel(ctx, log.WARN), "failed", append(fields, log.Error(q.Err))...)

		return
	}
	o.l.Log(log.WithLevel(ctx, log.DEBUG), "done", fields...)
}
