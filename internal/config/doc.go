// Package config manages user-level settings stored at ~/.createproject/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default base path for new projects and the version written to setup.py.
// Every key can also be supplied through a CREATEPROJECT_<KEY> environment variable.
package config
