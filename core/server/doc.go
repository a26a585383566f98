// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the settings it reads: listen port, API key and the upload body
// limit for import requests.
package server
