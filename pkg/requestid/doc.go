// Package requestid correlates the log lines of one submission across the
// CLI client and the server.
//
// Middleware attaches an id to every incoming request, reusing a valid
// X-Request-ID header when the client sent one. The form client forwards the
// id stored in its context, so a record submitted with formctl carries the
// same id in the client and server logs. LoggerExtractor plugs the id into
// pkg/logger.
package requestid
