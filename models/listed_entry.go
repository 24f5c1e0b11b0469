package models

// ListedEntry is the decrypted projection of a row returned by listing.
// The password is absent: it is only revealed on an explicit
// request by ID.
type ListedEntry struct {
	ID       EntryID `json:"id"`
	Service  string  `json:"service"`
	Username string  `json:"username"`
}
