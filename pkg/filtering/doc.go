// Package filtering provides the asset search filter for assetview.
//
// Token Search:
//
// Filter keeps the assets whose field text contains every token of a query:
//
//	matched := filtering.Filter(all, "invoice acme")
//
// Tokens are whitespace-separated, lower-cased, and ignored when shorter than
// MinTokenLength characters. An empty query returns the input unchanged.
//
// Combined Filters:
//
// Use FilterOptions to add folder and tag criteria on top of the query:
//
//	opts := filtering.FilterOptions{
//	    Query:  "invoice",
//	    Folder: "clients/**,!clients/archive",
//	    Tag:    "urgent,review",
//	}
//	matched, err := filtering.Apply(all, opts)
//
// Every stage is a stable subset of its input and never modifies it.
package filtering
