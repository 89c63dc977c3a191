// Package lib groups small self-contained building blocks that do not
// belong to a single layer: password hashing (lib/password) and bearer
// token signing (lib/token).
package lib
