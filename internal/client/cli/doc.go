// Package cli provides the interactive storefront and admin command-line
// client.
//
// It wires configuration, the local database, the commerce API client, and an
// interactive REPL. The prompt carries the cart badge (the line count), kept
// fresh through a subscription to the cart-changed broadcaster, so any
// command that mutates the cart is reflected on the very next prompt.
//
// Key commands:
//   - products / favs / fav <id>  — browse and mark favorites
//   - add <id> [qty] / remove <line> / cart — cart mutations and view
//   - coupon <code>               — apply a discount code
//   - checkout / resume <order>   — the three-step order wizard
//   - login / logout / orders / paid <id> — admin back-office
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
