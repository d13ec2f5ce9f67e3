package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/zasker/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func memoryConfig() *config.Config {
	return &config.Config{
		Address:   "127.0.0.1:0",
		Storage:   config.StorageMemory,
		JWTSecret: "secret",
		TokenTTL:  time.Hour,
		SeedDemo:  true,
	}
}

func (s *ApplicationSuite) TestStart_MemoryStorage() {
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, memoryConfig()))
	s.True(s.app.ready)

	alice, err := s.app.repo.IdentityRepo.FindIdentityByEmail(ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(alice)
	s.Equal("u1", alice.ID)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_UnknownStorage() {
	cfg := memoryConfig()
	cfg.Storage = "redis"

	err := s.app.start(context.Background(), cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "unknown storage")
}

func (s *ApplicationSuite) TestStart_UnreachableDatabase() {
	cfg := memoryConfig()
	cfg.Storage = config.StoragePostgres
	cfg.Database = "not a dsn ::"

	err := s.app.start(context.Background(), cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "can't build pgx pool")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
