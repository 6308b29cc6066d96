package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"nextcare-api/config"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/infrastructure/database/dbtest"
	"nextcare-api/internal/repository"
	"nextcare-api/internal/service"
	"nextcare-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx   context.Context
	db    *gorm.DB
	log   *logrus.Logger
	audit service.AuditService
	jwt   *jwt.JWTService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &fixture{
		ctx:   context.Background(),
		db:    dbtest.Open(t),
		log:   log,
		audit: service.NewAuditService(log, repository.NewAuditLogRepository()),
		jwt:   jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}),
	}
}

// createUser stores an account directly and returns the identity a verified token would yield.
func (f *fixture) createUser(t *testing.T, email string, role entity.Role) entity.Identity {
	t.Helper()

	user := &entity.User{
		Email:             email,
		Password:          "not-a-real-hash",
		Role:              role,
		PreferredLanguage: DefaultPreferredLanguage,
	}
	require.NoError(t, repository.NewUserRepository().Create(f.db, user))

	return entity.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func (f *fixture) auditActions(t *testing.T) []string {
	t.Helper()

	logs, err := repository.NewAuditLogRepository().FindAll(f.db, "")
	require.NoError(t, err)

	actions := make([]string, len(logs))
	for i, l := range logs {
		actions[i] = l.Action
	}
	return actions
}

func ptr[T any](v T) *T {
	return &v
}
