// Package report renders a run's issues for consumption by humans and
// external tools.
//
// This package contains writers for different output formats:
//   - OnelineWriter: one issue per line for terminal display
//   - JSONWriter: structured JSON output for tool integration
//   - SonarQubeWriter: the generic-issue import file plus a console render
//   - MarkdownWriter: a shareable Markdown document
//
// Design decision: We separate report writing from the issue data
// structures (which live in the model package) so new output formats can
// be added without modifying the core data structures. Writers implement
// the Writer interface, allowing them to be used interchangeably.
package report
