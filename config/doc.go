// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the cluster name, the selection
// strategy, the initial node list, failure-driven eviction and logging
// settings, and can watch the file so the node list is replaced on change.
package config
