// Package domain contains the core entities shared by the verification
// clients, the duplicate detector, storage and the HTTP layer: identity
// types and values (plain or encrypted), submitted identity entries and
// duplicate verdicts. The types carry no infrastructure concerns.
package domain
