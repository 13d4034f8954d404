// Package report builds the healthcheck snapshot and renders it as JSON or
// Prometheus text.
package report
