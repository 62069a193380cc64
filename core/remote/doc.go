// Package remote is the transport collaborator of the layout catalog.
//
// It wraps a resty client configured with the API base URL, a user agent and a
// request timeout. Authenticated clients send an OAuth2 bearer token through an
// oauth2.Transport; anonymous clients send only the user agent.
//
// Responses are returned as generic JSON values so callers can apply their own
// schema decoding. Non-2xx answers surface as *StatusError. The client never
// retries.
//
// # Usage
//
//	f := remote.NewFactory(cfg.Remote, nil)
//	api, err := f.ForToken(token)
//	body, err := api.Get(ctx, "/wpcom/v2/sites/42/block-layouts", params)
package remote
