// Package answers defines the Answer Record produced by the wizard and
// consumed by the scaffold generator. Records can also be read from and
// written to YAML answers files; files are checked against an embedded JSON
// schema before they are trusted.
package answers
