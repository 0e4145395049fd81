package email

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendCredentialsEmailDevModeFallback(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(SMTPConfig{DevMode: true}, zerolog.New(&buf))

	err := svc.SendCredentialsEmail("membre@labtim.org", "M. Membre", "s3cret-temp")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "s3cret-temp")
	assert.Contains(t, buf.String(), "membre@labtim.org")
}

func TestSendCredentialsEmailUnconfiguredProduction(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(SMTPConfig{DevMode: false}, zerolog.New(&buf))

	err := svc.SendCredentialsEmail("membre@labtim.org", "M. Membre", "s3cret-temp")
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.NotContains(t, err.Error(), "s3cret-temp")
	assert.NotContains(t, buf.String(), "s3cret-temp")
}
