package socket

import (
	"testing"

	"skillswap_server/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type noopVerifier struct{}

func (noopVerifier) VerifyToken(string) (string, error) { return "u1", nil }

func TestUserRoom(t *testing.T) {
	assert.Equal(t, "user:abc", UserRoom("abc"))
}

func TestMatchesChangedWithoutSubscribers(t *testing.T) {
	s := NewSocketServer(noopVerifier{}, zap.NewNop())
	assert.NotNil(t, s.Handler())
	assert.NotPanics(t, func() {
		s.MatchesChanged("u1", models.DefaultMatchCollections())
	})
}
