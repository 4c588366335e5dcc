// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/action, domain/task,
// domain/transaction, domain/lock). This root package holds sentinel errors,
// validation types, and the normalized external-service error.
package domain
