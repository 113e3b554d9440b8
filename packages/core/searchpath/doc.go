// Package searchpath holds the ordered module search path that tests run
// against and registers configured entries into it.
//
// A Registry is an insertion-only list: entries are appended once and never
// removed or reordered. The registry used by a real run is seeded from
// $PYTHONPATH (see Process and FromEnv) and handed to child processes through
// Environ.
package searchpath
