// Package postgresql provides a layout provider for projects stored in a
// postgres database, the way QGIS saves projects into a qgis_projects
// table. The project content is the zipped project file; the layouts are
// parsed out of it with the qgs package.
package postgresql

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/gdey/errors"
	"github.com/go-spatial/stampa/stampa/layouts"
	"github.com/go-spatial/stampa/stampa/layouts/qgs"
	"github.com/jackc/pgx"
)

// Name is the name of the provider type
const Name = "postgresql"

// AppName is shown by the pqclient
var AppName = "stampa"

const (
	// DefaultPort is the default port for postgres
	DefaultPort = 5432
	// DefaultMaxConn is the max number of connections to attempt
	DefaultMaxConn = 100
	// DefaultSSLMode by default ssl is disabled
	DefaultSSLMode = "disable"
	// DefaultSSLKey by default is empty
	DefaultSSLKey = ""
	// DefaultSSLCert by default is empty
	DefaultSSLCert = ""
	// DefaultTable is the table QGIS stores projects in
	DefaultTable = "qgis_projects"
)

const (
	// ConfigKeyHost is the config key for the postgres host
	ConfigKeyHost = "host"
	// ConfigKeyPort is the config key for the postgres port
	ConfigKeyPort = "port"
	// ConfigKeyDB is the config key for the postgres db
	ConfigKeyDB = "database"
	// ConfigKeyUser is the config key for the postgres user
	ConfigKeyUser = "user"
	// ConfigKeyPassword is the config key for the postgres user's password
	ConfigKeyPassword = "password"
	// ConfigKeySSLMode is the config key for the postgres SSL
	ConfigKeySSLMode = "ssl_mode"
	// ConfigKeySSLKey is the config key for the postgres SSL
	ConfigKeySSLKey = "ssl_key"
	// ConfigKeySSLCert is the config key for the postgres SSL
	ConfigKeySSLCert = "ssl_cert"
	// ConfigKeySSLRootCert is the config key for the postgres SSL
	ConfigKeySSLRootCert = "ssl_root_cert"
	// ConfigKeyMaxConn is the max number of connections to keep in the pool
	ConfigKeyMaxConn = "max_connections"
	// ConfigKeyProject is the name of the project to read layouts from
	ConfigKeyProject = "project"
	// ConfigKeyTable is the table the projects are stored in
	ConfigKeyTable = "table"
	// ConfigKeyQueryProject overrides the sql used to fetch the project content
	ConfigKeyQueryProject = "query_project"
)

// ErrInvalidSSLMode is returned when something is wrong with SSL configuration
type ErrInvalidSSLMode string

func (e ErrInvalidSSLMode) Error() string {
	return fmt.Sprintf("postgis: invalid ssl mode (%v)", string(e))
}

// ErrProjectNotFound is returned when the project row does not exist.
type ErrProjectNotFound string

func (e ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project (%v) not found", string(e))
}

// Provider implements the layouts.Provider interface
type Provider struct {
	config       pgx.ConnPoolConfig
	pool         *pgx.ConnPool
	project      string
	queryProject string
}

var pLock sync.RWMutex

// currently open providers, for cleanup
var openProviders []*Provider

func init() {
	layouts.Register(Name, NewLayoutProvider, Cleanup)
}

// NewLayoutProvider returns a layout provider that reads the project from
// a postgres database
func NewLayoutProvider(config layouts.ProviderConfig) (layouts.Provider, error) {
	host, err := config.String(ConfigKeyHost, nil)
	if err != nil {
		return nil, err
	}

	db, err := config.String(ConfigKeyDB, nil)
	if err != nil {
		return nil, err
	}

	user, err := config.String(ConfigKeyUser, nil)
	if err != nil {
		return nil, err
	}

	password, err := config.String(ConfigKeyPassword, nil)
	if err != nil {
		return nil, err
	}

	sslmode := DefaultSSLMode
	sslmode, err = config.String(ConfigKeySSLMode, &sslmode)
	if err != nil {
		return nil, err
	}

	sslkey := DefaultSSLKey
	sslkey, err = config.String(ConfigKeySSLKey, &sslkey)
	if err != nil {
		return nil, err
	}

	sslcert := DefaultSSLCert
	sslcert, err = config.String(ConfigKeySSLCert, &sslcert)
	if err != nil {
		return nil, err
	}

	sslrootcert := DefaultSSLCert
	sslrootcert, err = config.String(ConfigKeySSLRootCert, &sslrootcert)
	if err != nil {
		return nil, err
	}

	port := DefaultPort
	if port, err = config.Int(ConfigKeyPort, &port); err != nil {
		return nil, err
	}

	maxcon := DefaultMaxConn
	if maxcon, err = config.Int(ConfigKeyMaxConn, &maxcon); err != nil {
		return nil, err
	}

	project, err := config.String(ConfigKeyProject, nil)
	if err != nil {
		return nil, err
	}
	if project == "" {
		return nil, errors.String("error " + ConfigKeyProject + " missing value")
	}

	table := DefaultTable
	if table, err = config.String(ConfigKeyTable, &table); err != nil {
		return nil, err
	}

	queryProject := fmt.Sprintf(`SELECT content FROM %v WHERE name = $1;`, table)
	if queryProject, err = config.String(ConfigKeyQueryProject, &queryProject); err != nil {
		return nil, err
	}

	connConfig := pgx.ConnConfig{
		Host:     host,
		Port:     uint16(port),
		Database: db,
		User:     user,
		Password: password,
		LogLevel: pgx.LogLevelWarn,
		RuntimeParams: map[string]string{
			"default_transaction_read_only": "TRUE",
			"application_name":              AppName,
		},
	}

	err = ConfigTLS(sslmode, sslkey, sslcert, sslrootcert, &connConfig)
	if err != nil {
		return nil, err
	}

	p := Provider{
		config: pgx.ConnPoolConfig{
			ConnConfig:     connConfig,
			MaxConnections: maxcon,
		},
		project:      project,
		queryProject: queryProject,
	}
	if p.pool, err = pgx.NewConnPool(p.config); err != nil {
		return nil, fmt.Errorf("failed while creating connection pool: %v", err)
	}

	// track the provider so we can clean it up later
	pLock.Lock()
	openProviders = append(openProviders, &p)
	pLock.Unlock()
	return &p, nil
}

// ConfigTLS is used to configure TLS
// derived from github.com/jackc/pgx configTLS (https://github.com/jackc/pgx/blob/master/conn.go)
func ConfigTLS(sslMode string, sslKey string, sslCert string, sslRootCert string, cc *pgx.ConnConfig) error {

	switch sslMode {
	case "disable":
		cc.UseFallbackTLS = false
		cc.TLSConfig = nil
		cc.FallbackTLSConfig = nil
		return nil
	case "allow":
		cc.UseFallbackTLS = true
		cc.FallbackTLSConfig = &tls.Config{InsecureSkipVerify: true}
	case "prefer":
		cc.TLSConfig = &tls.Config{InsecureSkipVerify: true}
		cc.UseFallbackTLS = true
		cc.FallbackTLSConfig = nil
	case "require":
		cc.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	case "verify-ca", "verify-full":
		cc.TLSConfig = &tls.Config{
			ServerName: cc.Host,
		}
	default:
		return ErrInvalidSSLMode(sslMode)
	}

	if sslRootCert != "" {
		caCertPool := x509.NewCertPool()

		caCert, err := ioutil.ReadFile(sslRootCert)
		if err != nil {
			return fmt.Errorf("unable to read CA file (%q): %v", sslRootCert, err)
		}

		if !caCertPool.AppendCertsFromPEM(caCert) {
			return fmt.Errorf("unable to add CA to cert pool")
		}

		cc.TLSConfig.RootCAs = caCertPool
		cc.TLSConfig.InsecureSkipVerify = false
	}

	if sslCert != "" && sslKey != "" {
		cert, err := tls.LoadX509KeyPair(sslCert, sslKey)
		if err != nil {
			return fmt.Errorf("unable to read cert: %v", err)
		}

		cc.TLSConfig.Certificates = []tls.Certificate{cert}
	}

	return nil
}

// content fetches the raw project file bytes from the database.
func (p *Provider) content() ([]byte, error) {
	var data []byte
	row := p.pool.QueryRow(p.queryProject, p.project)
	if err := row.Scan(&data); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProjectNotFound(p.project)
		}
		return nil, err
	}
	return data, nil
}

// Layouts implements the layouts.Provider interface
func (p *Provider) Layouts() ([]layouts.Layout, error) {
	data, err := p.content()
	if err != nil {
		return nil, err
	}
	return qgs.ParseProject(data)
}

// LayoutFor implements the layouts.Provider interface
func (p *Provider) LayoutFor(name string) (layouts.Layout, error) {
	lyts, err := p.Layouts()
	if err != nil {
		return layouts.Layout{}, err
	}
	for _, l := range lyts {
		if l.Name == name {
			return l, nil
		}
	}
	return layouts.Layout{}, layouts.ErrNotFound
}

// Close closes the connection pool.
func (p *Provider) Close() {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

// Cleanup closes the pools of all open providers. Called as the system
// shuts down.
func Cleanup() {
	pLock.Lock()
	for _, p := range openProviders {
		p.Close()
	}
	openProviders = nil
	pLock.Unlock()
}

var _ = layouts.Provider(&Provider{})
