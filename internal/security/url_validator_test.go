package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURLRejectsEmpty(t *testing.T) {
	err := ValidateURL(context.Background(), "", false)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "empty", verr.Type)
}

func TestValidateURLRejectsBadScheme(t *testing.T) {
	err := ValidateURL(context.Background(), "javascript:alert(1)", false)
	require.Error(t, err)
}

func TestValidateURLRejectsPathTraversal(t *testing.T) {
	err := ValidateURL(context.Background(), "https://example.com/../../etc/passwd", false)
	require.Error(t, err)
}

func TestValidateURLRejectsPrivateIPLiteral(t *testing.T) {
	err := ValidateURL(context.Background(), "http://127.0.0.1/", false)
	require.Error(t, err)
	assert.True(t, IsSSRF(err))
}

func TestValidateURLAllowsPrivateWhenOptedIn(t *testing.T) {
	err := ValidateURL(context.Background(), "http://127.0.0.1/", true)
	assert.NoError(t, err)
}

func TestValidateURLAcceptsOrdinaryHTTPS(t *testing.T) {
	err := ValidateURL(context.Background(), "https://example.com/article", true)
	assert.NoError(t, err)
}
