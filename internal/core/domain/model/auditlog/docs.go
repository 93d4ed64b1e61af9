// Package auditlog models the append-only history kept for every order.
package auditlog
