// Package file provides the filesystem implementation of driven.FileStore.
// Writes go to a uniquely named temporary file in the target directory and
// are renamed into place, so readers never observe a partial schema.
package file
