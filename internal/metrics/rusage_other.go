//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package metrics

// ReadResourceUsage is not supported on this platform.
func ReadResourceUsage() (ResourceUsage, error) {
	return ResourceUsage{}, ErrUnsupported
}
