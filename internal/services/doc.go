// Package services holds the Bridge, the request/response contract the UI
// uses to reach the store.
//
// # Architecture Overview
//
//	Handlers (HTTP) / CLI
//	    │
//	    ▼
//	Bridge ──► Scheduler (1 worker) ──► Store ──► kantanpro.db
//
// Every Bridge method is one call on the scheduler. With a single worker the
// calls run one at a time in submission order, which is the only
// serialization the sqlite connection needs.
//
// # Call Contract
//
//   - A ValidationError is returned before anything is queued when the
//     arguments can be checked up front (an unknown status filter).
//   - Update and delete calls that match no row fail with
//     ResourceNotFoundError. The store itself reports Changes == 0.
//   - When the caller's context ends first the call returns ctx.Err(); the
//     statement already queued still runs to completion.
//   - After Close every call fails with ErrBridgeClosed.
//
// # Exports
//
// ExportSalesReport, ExportMonthlyReport and ExportTaxSummary read the
// report through the scheduler, then render it to xlsx or csv with the
// export package.
package services
