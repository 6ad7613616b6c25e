// Package paths discovers project directories on the real filesystem.
//
// It is the only place that touches the filesystem; the results are handed
// to [github.com/macropower/pageid/pkg/pagepath] as plain strings.
package paths
