// Package backoffice implements the client-side core of an authentication
// and user-administration console: a session store, a role-gated navigation
// guard, and paginated listing/detail controllers driving a remote REST API.
//
// Session lifecycle:
//   - SessionStore is the single writer for the authenticated Principal.
//     Login, Logout, Register, and UpdateProfile replace the Principal
//     atomically; observers registered via Subscribe always see either the
//     previous or the new value, never a partial update.
//   - A persisted token survives process restarts. Restore decodes the
//     stored token's claims and re-derives the Principal from the profile
//     endpoint; while that fetch is in flight the session reports itself as
//     resolving and the guard answers with a pending decision.
//
// Navigation:
//   - Decide is a pure admission decision evaluated on every
//     navigation: pending while the session resolves, redirect to login for
//     anonymous visitors, redirect home for authenticated principals whose
//     role is not allowed on the route, allow otherwise.
//
// Listings:
//   - ListingController owns the composed page/size/filter/sort query for
//     one listing screen. Responses carry the query generation that issued
//     them; results of superseded requests are discarded so a slow early
//     response can never overwrite a newer page.
package backoffice
