// Package startupmetrics provides a small bookkeeping and derived-metrics
// engine for early-stage companies. It is designed to be local-first and
// auditable: every business event is an append-only record, and every KPI is
// recomputed from those records on demand.
//
// The core functionalities include:
//   - Record Keeping: Registering startups and appending customers, employees,
//     funding rounds and raw metric points. Lifecycle transitions (a customer
//     churning, an employee leaving) never delete rows; they stamp a
//     timestamp so past months stay reproducible.
//   - Derived Metrics: A stateless engine that computes monthly recurring
//     revenue, annual recurring revenue, monthly churn rate, cash runway and
//     headcount from the recorded facts.
//   - Dashboard Composition: Assembling the individual metrics into a single
//     KPI dashboard snapshot for one startup.
//   - Metric History: Replaying the raw points of any recorded metric type in
//     chronological order.
//
// This package serves as the foundational logic for the `kpi` command-line
// tool, ensuring that all reported figures are derived from a single source
// of truth.
package startupmetrics
