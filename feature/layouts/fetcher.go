package layouts

import (
	"context"
	"fmt"

	"layout-catalog/core/remote"
	"layout-catalog/feature/layouts/models"

	"go.uber.org/zap"
)

const (
	sitePathFormat = "/wpcom/v2/sites/%d/block-layouts"
	commonPath     = "/wpcom/v2/common-block-layouts"
	commonScope    = "common"
)

// Account is the caller's account context.
type Account struct {
	// Remote reports whether the account has an authenticated, addressable
	// remote identity. Remote accounts use the per-site endpoint.
	Remote bool
	// SiteID is the numeric remote site identity.
	SiteID int64
	// Token is the bearer credential of a remote account.
	Token string
}

// Endpoint is a resolved catalog endpoint.
type Endpoint struct {
	// Path is the request path relative to the API base URL.
	Path string
	// Authenticated reports whether the path requires the account's credentials.
	Authenticated bool
	// Scope names the catalog for archiving: "site-<id>" or "common".
	Scope string
}

// ResolveEndpoint selects the endpoint for account without touching the network.
func ResolveEndpoint(account Account) (Endpoint, error) {
	if !account.Remote {
		return Endpoint{Path: commonPath, Scope: commonScope}, nil
	}
	if account.SiteID <= 0 {
		return Endpoint{}, fmt.Errorf("%w: remote account has no site id", ErrConfiguration)
	}
	return Endpoint{
		Path:          fmt.Sprintf(sitePathFormat, account.SiteID),
		Authenticated: true,
		Scope:         fmt.Sprintf("site-%d", account.SiteID),
	}, nil
}

// TransportProvider hands out remote clients.
type TransportProvider interface {
	Anonymous() remote.Getter
	ForToken(token string) (remote.Getter, error)
}

// Fetcher retrieves and decodes the remote catalog.
type Fetcher struct {
	transports TransportProvider
	params     ParamBuilder
	logger     *zap.Logger
}

// NewFetcher creates a catalog fetcher.
func NewFetcher(transports TransportProvider, params ParamBuilder, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		transports: transports,
		params:     params,
		logger:     logger,
	}
}

// Request is a catalog request whose endpoint and transport are resolved.
type Request struct {
	Endpoint Endpoint
	api      remote.Getter
}

// Prepare resolves the endpoint and transport for account. It fails with
// ErrConfiguration when the account cannot be served; no request is made.
func (f *Fetcher) Prepare(account Account) (*Request, error) {
	endpoint, err := ResolveEndpoint(account)
	if err != nil {
		return nil, err
	}

	if !endpoint.Authenticated {
		api := f.transports.Anonymous()
		if api == nil {
			return nil, fmt.Errorf("%w: no anonymous transport", ErrConfiguration)
		}
		return &Request{Endpoint: endpoint, api: api}, nil
	}

	api, err := f.transports.ForToken(account.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if api == nil {
		return nil, fmt.Errorf("%w: no authenticated transport", ErrConfiguration)
	}

	return &Request{Endpoint: endpoint, api: api}, nil
}

// Fetch prepares and executes a catalog request for account.
func (f *Fetcher) Fetch(ctx context.Context, account Account, size Size) (*models.Catalog, error) {
	req, err := f.Prepare(account)
	if err != nil {
		return nil, err
	}
	return f.Do(ctx, req, size)
}

// Do executes a prepared request. Transport errors are returned unchanged.
func (f *Fetcher) Do(ctx context.Context, req *Request, size Size) (*models.Catalog, error) {
	body, err := req.api.Get(ctx, req.Endpoint.Path, f.params.Build(size))
	if err != nil {
		return nil, err
	}

	catalog, err := decode(body)
	if err != nil {
		f.logger.Warn("Unable to parse layouts response",
			zap.String("path", req.Endpoint.Path),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	f.logger.Debug("Fetched layout catalog",
		zap.String("path", req.Endpoint.Path),
		zap.Int("categories", len(catalog.Categories)),
		zap.Int("layouts", len(catalog.Layouts)))

	return catalog, nil
}
