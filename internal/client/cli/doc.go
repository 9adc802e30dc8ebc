// Package cli implements the interactive storefront client: a read-eval-print
// loop over the catalog, cart, checkout, wishlist and order commands, plus the
// role-gated back-office loops for managers and admins.
//
// Command handlers print their own errors and never abort the loop; the REPL
// stays resilient and focused on I/O. User-facing output goes through the
// printlnFn seam so tests can capture it.
package cli
