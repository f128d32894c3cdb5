package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain name is valid", input: "admin", wantErr: nil},
		{name: "spaces are allowed", input: "side project", wantErr: nil},
		{name: "empty name rejected", input: "", wantErr: ErrEmptyName},
		{name: "separator rejected", input: "ad#min", wantErr: ErrReservedName},
		{name: "leading separator rejected", input: "#admin", wantErr: ErrReservedName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestEncodeDisplayName(t *testing.T) {
	t.Run("encodes project and view", func(t *testing.T) {
		got, err := EncodeDisplayName("admin", "view")
		require.NoError(t, err)
		assert.Equal(t, "admin#view", got)
	})

	t.Run("rejects separator in project name", func(t *testing.T) {
		_, err := EncodeDisplayName("ad#min", "view")
		assert.ErrorIs(t, err, ErrReservedName)
	})

	t.Run("rejects separator in view name", func(t *testing.T) {
		_, err := EncodeDisplayName("admin", "vi#ew")
		assert.ErrorIs(t, err, ErrReservedName)
	})

	t.Run("rejects empty parts", func(t *testing.T) {
		_, err := EncodeDisplayName("", "view")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestParseDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantProject string
		wantView    string
		wantErr     error
	}{
		{name: "well-formed", input: "admin#view", wantProject: "admin", wantView: "view"},
		{name: "no separator", input: "scratch", wantErr: ErrMalformedDisplayName},
		{name: "two separators", input: "a#b#c", wantErr: ErrMalformedDisplayName},
		{name: "empty project part", input: "#view", wantErr: ErrMalformedDisplayName},
		{name: "empty view part", input: "admin#", wantErr: ErrMalformedDisplayName},
		{name: "empty string", input: "", wantErr: ErrMalformedDisplayName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, view, err := ParseDisplayName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProject, project)
			assert.Equal(t, tt.wantView, view)
		})
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"admin", "view"},
		{"dev", "b"},
		{"side project", "notes 2"},
	}
	for _, pair := range pairs {
		encoded, err := EncodeDisplayName(pair[0], pair[1])
		require.NoError(t, err)

		project, view, err := ParseDisplayName(encoded)
		require.NoError(t, err)
		assert.Equal(t, pair[0], project)
		assert.Equal(t, pair[1], view)
	}
}
