// Package cli implements the person-client command line tool.
package cli
