// Package kernel holds the value objects shared by every aggregate of the
// order-management domain:
//   - UUID: identifier of every persisted record
//   - OrderNumber: the sequential PED-NNNNNN order reference
//   - QuantityType: UN or KG
//   - Actor: who performed a change, recorded in the audit log
//
// All of them are immutable and validate on construction.
package kernel
