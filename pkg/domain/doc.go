// Package domain contains the core domain entities and types used by the
// application. These types represent the PACER browsing concepts (classified
// pages, tabs, toolbar state, notifications and user options) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
