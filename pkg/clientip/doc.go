// Package clientip resolves the address of the client behind an HTTP request.
//
// Proxy headers are consulted only when listed. Without them the address is
// taken from RemoteAddr, so a client cannot pick its own rate limit key.
//
//	r.Use(clientip.Middleware(cfg.TrustedProxyHeaders...))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
