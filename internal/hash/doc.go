// Package hash wraps xxHash64 for lane payload and snapshot checksums.
package hash
