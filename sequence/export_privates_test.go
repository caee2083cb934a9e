// SPDX-License-Identifier: MIT

package sequence

// Test bridge for unexported helpers; compiled only with the package tests.
var (
	ExportedAllocateInt  = allocate[int]
	ExportedValidateLen  = validateLen
	PanicVerbInvalid_Raw = panicVerbInvalid
)
