// Package ports declares the interfaces the application core needs from the outside world:
// the shipping platform (orders, rates, tags, products, stores) and the run history.
// Adapters under internal/adapters implement them.
package ports
