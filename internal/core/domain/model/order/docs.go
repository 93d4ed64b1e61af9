// Package order provides the Order aggregate of a flexible-packaging sales
// order together with its line items, lifecycle and totals rule.
//
// The package includes:
//   - Order: the aggregate root owning header, status, items and the
//     denormalized total price
//   - Item: one priced line snapshotting a package specification
//   - Status: the lifecycle state machine RASCUNHO -> APROVADO -> EM_EXECUCAO
//     -> CONCLUIDO, with CANCELADO reachable from every non-terminal status
//   - ComputeTotal: the pure totals rule
//
// Key business rules:
//   - Items are added and deleted only while the order is RASCUNHO
//   - Approved and executing orders only accept planning changes on items
//   - Snapshot fields of an item never change
//   - Every mutation recomputes the total and records audit entries that the
//     persistence layer writes in the same transaction
//   - The first production order of an approved order starts its execution
package order
