// Package pacer recognizes pages of the federal courts' PACER site.
//
// Every function is total and side-effect free: malformed or unrelated input
// yields a negative result ("", false) instead of an error, because the
// answers only steer advisory UI such as toolbar state and notifications.
// The court tables are read-only package data, so all functions are safe for
// concurrent use.
package pacer
