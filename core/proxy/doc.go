// Package proxy implements the forwarding collaborator used by prefix
// proxy registrations.
//
// Forward produces an ordinary handler, so proxied requests flow through
// the same facades and error mapping as everything else; only the work in
// the middle is an outbound call to another origin, performed with a
// retrying HTTP client.
package proxy
