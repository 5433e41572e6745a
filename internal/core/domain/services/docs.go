// Package services provides domain services that implement business
// computations spanning multiple domain values. The central service is the
// quotation pricing calculator, which combines a product line's displayed
// price, the commission markup, and the mode-dependent freight into the
// amounts shown to clients.
package services
