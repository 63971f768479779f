// Package resolver builds the *net.Resolver used to canonicalise the build
// host name. A socks5:// proxy, given explicitly or through ALL_PROXY, routes
// the lookup through the proxy over DNS-over-TCP.
package resolver
