//go:build hats_unchecked

package Hats

const checked = false
