// Package filesystem provides the local-disk implementation of driven.FileReader.
package filesystem
