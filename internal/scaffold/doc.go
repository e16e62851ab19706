// Package scaffold generates the skeleton of a new Python package from an
// Answer Record. It powers the "createproject new" command: a fixed layout of
// files and directories is rendered from embedded templates, and the
// template-related pieces (templates/ directory, Jinja2 requirement, package
// data, MANIFEST.in include) appear only when the record asks for them.
package scaffold
