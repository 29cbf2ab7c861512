// Package genconfig loads and validates the parameters a Generator run
// needs: radius, target-size factors, and the expansion-cap derivation
// inputs. Config is loaded via github.com/spf13/viper from a YAML/JSON file
// or environment variables, with defaults set for the two fields the spec
// allows to be implicit (ExpansionPercentile, ExpansionSlack).
package genconfig
