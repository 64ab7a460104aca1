// Package pagination provides utilities for non-interactive paged
// output: flag validation, result slicing, sorting, and response
// metadata.
//
// Two mutually exclusive modes are supported:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
package pagination
