// Package wizard implements the interactive `k3x init` questionnaire that
// produces a starter k3x.yaml.
package wizard
