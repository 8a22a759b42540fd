// Package grammar implements the RFC 3986 character classes and the ABNF
// matchers that split a URI reference, an authority and a query into raw parts.
//
// The authority and scheme are matched by the rules generated into the rfc3986
// package, the remaining components are only delimited. Nothing here validates
// semantics (port ranges, IPv6 zones, domain names), it only decides whether the
// input fits the structure and where each part is.
package grammar

//go:generate go tool errtrace -w .
//go:generate go tool abnf generate ./rfc3986/abnf.yml
