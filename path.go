package govconf

import "strings"

// RootDir normalizes a group into a namespace root that starts with the
// separator. Already prefixed groups are returned unchanged.
func RootDir(group string) string {
	if strings.HasPrefix(group, PathSeparator) {
		return group
	}
	return PathSeparator + group
}

// NodePath joins root and key with exactly one separator between them.
// A bare "/" root yields "/key", never "//key".
func NodePath(root, key string) string {
	if root == PathSeparator {
		return root + key
	}
	return root + PathSeparator + key
}
