package layouts

import (
	"context"
	"errors"
	"testing"

	"layout-catalog/core/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockGetter is a testify mock of remote.Getter.
type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) Get(ctx context.Context, path string, params map[string]string) (any, error) {
	args := m.Called(ctx, path, params)
	return args.Get(0), args.Error(1)
}

// stubTransports hands out fixed getters.
type stubTransports struct {
	anonymous remote.Getter
	authed    remote.Getter
	tokens    []string
}

func (s *stubTransports) Anonymous() remote.Getter {
	return s.anonymous
}

func (s *stubTransports) ForToken(token string) (remote.Getter, error) {
	s.tokens = append(s.tokens, token)
	if token == "" {
		return nil, remote.ErrNoCredentials
	}
	return s.authed, nil
}

func validPayload() map[string]any {
	return map[string]any{
		"categories": []any{map[string]any{"slug": "about", "title": "About"}},
		"layouts":    []any{map[string]any{"slug": "l1", "title": "One", "categories": []any{"about"}}},
	}
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    Endpoint
		wantErr bool
	}{
		{"Anonymous", Account{}, Endpoint{Path: "/wpcom/v2/common-block-layouts", Scope: "common"}, false},
		{"Anonymous ignores site", Account{SiteID: 7}, Endpoint{Path: "/wpcom/v2/common-block-layouts", Scope: "common"}, false},
		{"Remote", Account{Remote: true, SiteID: 42, Token: "t"}, Endpoint{Path: "/wpcom/v2/sites/42/block-layouts", Authenticated: true, Scope: "site-42"}, false},
		{"Remote without site", Account{Remote: true, Token: "t"}, Endpoint{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEndpoint(tt.account)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_Authenticated(t *testing.T) {
	api := new(mockGetter)
	api.On("Get", mock.Anything, "/wpcom/v2/sites/42/block-layouts", map[string]string{
		"preview_width": "300",
		"scale":         "2",
	}).Return(validPayload(), nil).Once()

	transports := &stubTransports{authed: api}
	f := NewFetcher(transports, ParamBuilder{Scale: 2}, zap.NewNop())

	catalog, err := f.Fetch(context.Background(), Account{Remote: true, SiteID: 42, Token: "secret"}, Size{Width: 300, Height: 200})
	require.NoError(t, err)
	require.NotNil(t, catalog)
	assert.Equal(t, "l1", catalog.Layouts[0].Slug)
	assert.Equal(t, []string{"secret"}, transports.tokens)
	api.AssertExpectations(t)
}

func TestFetcher_Anonymous(t *testing.T) {
	api := new(mockGetter)
	api.On("Get", mock.Anything, "/wpcom/v2/common-block-layouts", mock.Anything).Return(validPayload(), nil).Once()

	f := NewFetcher(&stubTransports{anonymous: api}, ParamBuilder{Scale: 3}, zap.NewNop())

	catalog, err := f.Fetch(context.Background(), Account{}, Size{Width: 120})
	require.NoError(t, err)
	assert.Len(t, catalog.Categories, 1)
	api.AssertExpectations(t)
}

func TestFetcher_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		account    Account
		transports *stubTransports
	}{
		{"Missing site id", Account{Remote: true, Token: "secret"}, &stubTransports{authed: new(mockGetter)}},
		{"Missing token", Account{Remote: true, SiteID: 42}, &stubTransports{authed: new(mockGetter)}},
		{"Missing authenticated transport", Account{Remote: true, SiteID: 42, Token: "secret"}, &stubTransports{}},
		{"Missing anonymous transport", Account{}, &stubTransports{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher(tt.transports, ParamBuilder{Scale: 2}, zap.NewNop())

			catalog, err := f.Fetch(context.Background(), tt.account, Size{Width: 100})
			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Equal(t, KindConfiguration, KindOf(err))
		})
	}
}

func TestFetcher_TransportErrorIsVerbatim(t *testing.T) {
	transportErr := &remote.StatusError{Method: "GET", Path: "/wpcom/v2/common-block-layouts", StatusCode: 500}

	api := new(mockGetter)
	api.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, transportErr).Once()

	f := NewFetcher(&stubTransports{anonymous: api}, ParamBuilder{Scale: 2}, zap.NewNop())

	_, err := f.Fetch(context.Background(), Account{}, Size{Width: 100})
	assert.Same(t, transportErr, err)
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestFetcher_ParseError(t *testing.T) {
	api := new(mockGetter)
	api.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(map[string]any{"layouts": "nope"}, nil).Once()

	f := NewFetcher(&stubTransports{anonymous: api}, ParamBuilder{Scale: 2}, zap.NewNop())

	catalog, err := f.Fetch(context.Background(), Account{}, Size{Width: 100})
	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, ErrParse)
	assert.False(t, errors.Is(err, ErrPersistence))
}
