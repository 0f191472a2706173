// Package generator produces random fake usernames, display names and
// passwords for filling out signup forms behind an alias.
//
// The randomness source is the general-purpose math/rand/v2 generator;
// nothing here is suitable for cryptographic use.
package generator
