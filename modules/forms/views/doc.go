// Package views renders the forms module's pages and DataStar fragments.
//
// Pages are html/template files embedded in the binary. Each one is exposed
// as a templ.Component, so handlers return them through handler.Templ and
// stream them with handler.SSE like any other component.
package views
