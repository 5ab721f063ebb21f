package auth

import (
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	user := &domain.User{ID: "u1", Email: "alice@example.com"}
	token, err := m.Issue(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue(&domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	require.Error(t, err)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	require.Error(t, err)
}
