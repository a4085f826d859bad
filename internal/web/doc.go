// Package web owns the browser-facing surface of the research agent UI.
//
// It serves the landing page that hosts the application header, the
// embedded static assets the page references, and a health endpoint.
package web
