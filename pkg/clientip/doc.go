// Package clientip resolves real client IP addresses behind proxies.
//
// A Policy states how much of the X-Forwarded-For / X-Real-IP chain to
// believe: nothing, everything, a fixed number of hops, or proxies within
// configured CIDR ranges. Both transport bindings apply the same policy, so
// a request produces the same resolved address regardless of transport.
//
// All candidate addresses are validated with net.ParseIP and normalized;
// malformed entries and unspecified addresses are skipped, and the
// transport peer address is the fallback when nothing believable remains.
package clientip
