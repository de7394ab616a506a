// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

const maskedPrefixLength = 5

// MaskAPIKey keeps the first five characters of key and replaces the rest
// with a fixed mask so logs never carry the full key. Keys of five
// characters or fewer are masked entirely.
func MaskAPIKey(key string) string {
	runes := []rune(key)
	if len(runes) <= maskedPrefixLength {
		return "*****"
	}
	return string(runes[:maskedPrefixLength]) + "*****"
}
