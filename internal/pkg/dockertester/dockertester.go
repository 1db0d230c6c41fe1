// Package dockertester spins up throwaway Postgres containers for
// DAO integration tests.
package dockertester

import (
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	testDBUser     = "test_user"
	testDBPassword = "test_password"
	testDBName     = "test_db"
)

type DockerTester struct {
	Pool     *dockertest.Pool
	Resource *dockertest.Resource
}

// InitPostgres starts a Postgres container and waits until it accepts
// connections.
func InitPostgres() (*DockerTester, *gorm.DB, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("dockertest.NewPool -> %w", err)
	}

	if err = pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("pool.Client.Ping -> %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("pool.RunWithOptions -> %w", err)
	}

	_ = resource.Expire(120)

	dsn := fmt.Sprintf("host=localhost port=%v user=%v password=%v dbname=%v sslmode=disable",
		resource.GetPort("5432/tcp"), testDBUser, testDBPassword, testDBName)

	var db *gorm.DB

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		_ = pool.Purge(resource)

		return nil, nil, fmt.Errorf("pool.Retry -> %w", err)
	}

	return &DockerTester{Pool: pool, Resource: resource}, db, nil
}

func (t *DockerTester) Purge() error {
	return t.Pool.Purge(t.Resource)
}
