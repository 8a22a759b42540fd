// Package config loads the parser configuration of the uriparse tool.
//
// Configuration is read from a YAML file:
//
//	query_mode: array|semicolon
//	default_scheme: http
//	schemes:
//	  - name: gopher
//	    default_port: 70
//	log:
//	  format: console
//	  level: info
//
// Environment variables URIPARSE_QUERY_MODE, URIPARSE_DEFAULT_SCHEME,
// URIPARSE_LOG_FORMAT and URIPARSE_LOG_LEVEL take precedence over the file.
package config
