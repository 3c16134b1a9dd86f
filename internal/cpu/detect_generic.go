//go:build !amd64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures: only the
// generic kernel is used.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
