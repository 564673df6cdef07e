//go:build !windows

package util

func IsRunFromGUI() bool {
	// Only Windows users double-click console programs.
	return false
}
