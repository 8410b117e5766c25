// Package rest implements the catalog driven ports against the storefront
// REST API.
//
// Endpoints (relative to the configured base URL):
//
//	GET /products?page=&size=&sortBy=&sortDirection=&categoryId=&minPrice=&maxPrice=
//	GET /productssearch/item?q=&minPrice=&maxPrice=
//	GET /products/{id}
//	GET /products/sku/{sku}
//	GET /categories
//
// The API pages from zero; this package converts to and from the 1-based
// pages used everywhere else. Responses are decoded leniently: a catalog
// response may be a page object or a bare array, a search response may be
// an array or a single product, and prices may be JSON numbers or strings.
//
// Requests are throttled with a token bucket and retried with exponential
// backoff on network errors, 429 and 5xx responses.
package rest
