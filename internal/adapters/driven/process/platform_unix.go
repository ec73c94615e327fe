//go:build !windows

package process

// Current returns the platform for this build.
func Current() Platform {
	return POSIX
}
