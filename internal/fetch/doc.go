// Package fetch retrieves web pages for extraction.
//
// A Fetcher issues a single GET per call with a desktop-browser User-Agent
// and a fixed timeout. Every failure (bad URL, connection error, timeout,
// non-2xx status, oversized body) is returned as an error wrapping one of
// the package's sentinel errors; nothing here terminates the caller.
//
// Pages can optionally be fetched through a proxy. SOCKS5 proxies (for
// example a local Tor daemon at socks5://127.0.0.1:9050) are dialled with
// golang.org/x/net/proxy, HTTP proxies use the standard transport.
//
// # Usage
//
//	f, err := fetch.New(fetch.WithTimeout(10 * time.Second))
//	if err != nil {
//	    return err
//	}
//	resp, err := f.Fetch(ctx, "example.com") // fetched as https://example.com
package fetch
