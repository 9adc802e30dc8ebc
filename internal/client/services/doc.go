// Package services contains the application services of the storefront
// client: authentication and session handling, catalog browsing with
// client-side filtering, checkout, wishlist, order history and the
// back-office operations behind the manager/admin surfaces.
//
// Services accept narrow API interfaces so tests can stub the remote layer.
// Client-side validation failures surface as common.ErrValidation and never
// reach the network; operations that need a signed-in user fail with
// common.ErrAuthRequired before any call is made.
package services
