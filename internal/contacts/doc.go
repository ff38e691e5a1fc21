// Package contacts loads the address book used to fill the appointment form.
//
// Contacts come from a local file chosen with Open: a vCard export (.vcf) or
// a TOML file of [[contact]] tables. Each contact's given name follows the
// "Client | Dog" convention; SplitClientDog recovers both parts and Fill
// maps a contact onto the form fields.
//
// Filter implements the search box. Both the query and the candidate fields
// are folded with Normalize so "zoe" matches "Zoë" and "jane rex" matches
// "Jane | Rex".
package contacts
