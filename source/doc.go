// Package source defines the Source contract sources register against an
// attribute, and two built-ins: a fixed constant and a caller-supplied
// lookup table.
package source
