package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	MaxOpenConns int
}

func MySQLDSN(o Options) string {
	cfg := mysql.NewConfig()
	cfg.User = o.User
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(o.Host, o.Port)
	cfg.DBName = o.Name
	cfg.ParseTime = true
	// RowsAffected must count matched rows, not changed ones, so an update that
	// rewrites identical values is not mistaken for a missing row.
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

func PostgresDSN(o Options) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		o.User, o.Password, net.JoinHostPort(o.Host, o.Port), o.Name,
	)
}

func Dialector(o Options) (gorm.Dialector, error) {
	switch o.Driver {
	case "", DriverMySQL:
		if o.Port == "" {
			o.Port = "3306"
		}
		return gormmysql.New(gormmysql.Config{
			DSN:                       MySQLDSN(o),
			SkipInitializeWithVersion: true,
		}), nil
	case DriverPostgres:
		if o.Port == "" {
			o.Port = "5432"
		}
		return postgres.Open(PostgresDSN(o)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", o.Driver)
	}
}

func configurePool(sqlDB *sql.DB, maxOpen int) {
	const (
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)
	if maxOpen <= 0 {
		maxOpen = 10
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// Open builds the pool without touching the network; use Ping to check the
// store is reachable.
func Open(o Options) (*gorm.DB, error) {
	dialector, err := Dialector(o)
	if err != nil {
		return nil, err
	}
	return OpenDialector(dialector, o.MaxOpenConns)
}

func OpenDialector(dialector gorm.Dialector, maxOpen int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		NowFunc:              func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	configurePool(sqlDB, maxOpen)

	return db, nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
