// Package ports defines the contracts between the tours core and its
// infrastructure: repositories for the tour aggregate, its dependents and
// inquiries, the unit of work that hands them out, the media store that turns
// uploads into stable references, and the lock used by background jobs.
//
// Storage adapters provide per-document atomicity only. The core never relies
// on a transaction spanning more than one repository call of a multi-step
// operation; each step of such an operation commits on its own.
package ports
