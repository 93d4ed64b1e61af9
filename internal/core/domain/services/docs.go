// Package services provides domain services that work across aggregates or
// compute derived values that belong to no single aggregate.
//
// The package includes:
//   - ProductionPlanner: links a new production order to its sales order and
//     applies the automatic start of execution
//   - MetricsCalculator: the read-only quantity and value figures of an order
//   - Estimator: film mass and unit estimates for packaging dimensions
package services
