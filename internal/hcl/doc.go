// Package hcl is the HCL implementation of the config.Loader interface. It
// parses manifest files with hclparse, decodes them into the schema block
// structures, and translates the result into the format-agnostic model.
package hcl
