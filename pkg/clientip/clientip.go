package clientip

import (
	"net"
	"net/http"
	"strings"
)

type mode int

const (
	modeNone mode = iota
	modeAll
	modeHops
	modeCIDRs
)

// Policy decides which forwarding headers to believe when resolving the
// real client address. The zero value trusts nothing.
type Policy struct {
	mode  mode
	hops  int
	cidrs []*net.IPNet
}

// TrustNone believes no forwarding headers; the transport peer address is
// the client. This is the safe default for directly exposed servers.
func TrustNone() Policy {
	return Policy{mode: modeNone}
}

// TrustAll believes forwarding headers unconditionally and takes the
// leftmost valid address as the client. Only sound when every path to the
// server goes through a trusted proxy layer.
func TrustAll() Policy {
	return Policy{mode: modeAll}
}

// TrustHops believes exactly n proxy hops in front of the server: the
// client is the address n entries in from the right of the forwarding
// chain.
func TrustHops(n int) Policy {
	if n < 0 {
		n = 0
	}
	return Policy{mode: modeHops, hops: n}
}

// TrustCIDRs believes proxies inside the given CIDR ranges: walking the
// chain from nearest to farthest, the first address outside every trusted
// range is the client. Invalid CIDR strings are reported immediately.
func TrustCIDRs(cidrs ...string) (Policy, error) {
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(c)
		if err != nil {
			return Policy{}, err
		}
		nets = append(nets, n)
	}
	return Policy{mode: modeCIDRs, cidrs: nets}, nil
}

// Parse builds a Policy from its configuration string form: "none", "all",
// a decimal hop count, or a comma-separated CIDR list.
func Parse(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TrustNone(), nil
	case "all":
		return TrustAll(), nil
	}

	if hops, ok := parseHops(s); ok {
		return TrustHops(hops), nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return TrustCIDRs(parts...)
}

func parseHops(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// Resolve applies the policy to the transport peer address and the request
// headers and returns the normalized client IP. When no believable address
// is found, the peer address host is returned as-is.
func (p Policy) Resolve(remoteAddr string, header http.Header) string {
	peer := stripPort(remoteAddr)

	if p.mode == modeNone {
		if ip := normalize(peer); ip != "" {
			return ip
		}
		return peer
	}

	// The chain runs client-first: forwarded entries, then the peer as the
	// nearest hop.
	chain := forwardedChain(header)
	chain = append(chain, peer)

	switch p.mode {
	case modeAll:
		for _, hop := range chain {
			if ip := normalize(hop); ip != "" {
				return ip
			}
		}

	case modeHops:
		idx := len(chain) - 1 - p.hops
		if idx < 0 {
			idx = 0
		}
		if ip := normalize(chain[idx]); ip != "" {
			return ip
		}

	case modeCIDRs:
		for i := len(chain) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(chain[i]))
			if ip == nil {
				continue
			}
			if !p.contains(ip) {
				return ip.String()
			}
			if i == 0 {
				// Whole chain is trusted proxies; the farthest entry is the
				// best client candidate available.
				return ip.String()
			}
		}
	}

	return peer
}

func (p Policy) contains(ip net.IP) bool {
	for _, n := range p.cidrs {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// forwardedChain collects candidate addresses from X-Forwarded-For entries,
// falling back to X-Real-IP.
func forwardedChain(header http.Header) []string {
	if header == nil {
		return nil
	}

	var chain []string
	for _, xff := range header.Values("X-Forwarded-For") {
		for _, hop := range strings.Split(xff, ",") {
			if hop = strings.TrimSpace(hop); hop != "" {
				chain = append(chain, hop)
			}
		}
	}
	if len(chain) == 0 {
		if rip := strings.TrimSpace(header.Get("X-Real-IP")); rip != "" {
			chain = append(chain, rip)
		}
	}
	return chain
}

// normalize validates and canonicalizes an IP string. The unspecified
// addresses are rejected since they never identify a real client.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}

func stripPort(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
