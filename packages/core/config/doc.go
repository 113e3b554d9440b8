// Package config discovers and merges hierarchical gvtest.yaml files.
//
// Starting from a directory, every ancestor up to the filesystem root is
// checked for a gvtest.yaml file. The files found are processed root first:
// each one is loaded, validated, and its python_paths entries are resolved
// against the directory holding the file. The resolved entries of all files
// are concatenated, so a deeper file adds to what its ancestors declared and
// never replaces it.
//
// A configuration file looks like:
//
//	python_paths:
//	  - lib            # relative to this file's directory
//	  - ../shared/py
//	  - /opt/sdk/python
//
// Typical use:
//
//	paths, err := config.GetPythonPathsForDir(dir)
//
//	reg := searchpath.FromEnv(searchpath.EnvVar)
//	added, err := config.LoadAndApplyConfig(dir, reg)
//
// Any file that fails to parse or validate fails the whole call; warnings
// (unknown keys, missing directories, empty files) are only logged.
package config
