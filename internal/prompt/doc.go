// Package prompt asks one question at a time and keeps asking until the
// answer passes its validator. Rendering and input reading are delegated to a
// Presenter so the retry loop can be driven by a script in tests and by a
// terminal in the CLI.
package prompt
