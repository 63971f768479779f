package resolver

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/net/proxy"
)

const socks5Scheme = "socks5://"

// New returns a *net.Resolver for the given proxy URL. An empty proxyURL
// falls back to $ALL_PROXY. Anything other than a socks5:// URL yields the
// platform resolver.
func New(proxyURL string) (*net.Resolver, error) {
	if proxyURL == "" {
		proxyURL = os.Getenv("ALL_PROXY")
	}
	if !strings.HasPrefix(proxyURL, socks5Scheme) {
		return &net.Resolver{}, nil
	}

	host := strings.TrimPrefix(proxyURL, socks5Scheme)
	dialer, err := proxy.SOCKS5("tcp", host, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("creating SOCKS5 dialer for %s: %w", host, err)
	}
	ctxDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("SOCKS5 dialer does not implement ContextDialer")
	}

	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, address string) (net.Conn, error) {
			return ctxDialer.DialContext(ctx, "tcp", address)
		},
	}, nil
}
