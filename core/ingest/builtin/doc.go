// Package builtin wires the json, csv and xlsx handlers into a fresh registry.
package builtin
