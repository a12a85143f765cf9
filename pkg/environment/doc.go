// Package environment names the deployment environments (development,
// staging, production) and carries the current one through request contexts.
//
// Environment implements encoding.TextUnmarshaler, so it can be loaded from
// APP_ENV with pkg/config. The error handler consults IsDevelopment to decide
// whether internal error text is shown to the client.
package environment
