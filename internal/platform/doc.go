// Package platform wraps the host facilities the resolver relies on: path
// existence checks, permission bits, the desktop default-handler and
// desktop notifications over the session bus.
package platform
