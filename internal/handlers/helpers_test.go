package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/scribo/internal/models"
)

func TestIsValidationError(t *testing.T) {
	user := &models.User{}
	wrapped := fmt.Errorf("user validation failed: %w", user.Validate())
	assert.True(t, IsValidationError(wrapped))

	// Message text alone must not be enough
	assert.False(t, IsValidationError(errors.New("validation failed elsewhere")))
	assert.False(t, IsValidationError(nil))
}

func TestParseIDFromPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{name: "simple id", path: "/users/42", prefix: "/users/", want: 42},
		{name: "trailing slash", path: "/users/42/", prefix: "/users/", want: 42},
		{name: "missing id", path: "/users/", prefix: "/users/", wantErr: true},
		{name: "non-numeric", path: "/users/abc", prefix: "/users/", wantErr: true},
		{name: "wrong prefix", path: "/posts/42", prefix: "/users/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDFromPath(tt.path, tt.prefix)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
