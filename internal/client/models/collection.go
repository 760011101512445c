package models

// Collection maps a wallet address to its minted records, newest first.
type Collection map[string][]NftData

// Append returns a new collection where identity's records are rec followed
// by the previous records. c and its slices are left untouched; entries of
// other identities are shared with c.
func Append(c Collection, identity string, rec NftData) Collection {
	out := make(Collection, len(c)+1)
	for k, v := range c {
		out[k] = v
	}

	prev := c[identity]
	records := make([]NftData, 0, len(prev)+1)
	records = append(records, rec)
	records = append(records, prev...)
	out[identity] = records

	return out
}

// For returns a copy of identity's records, or an empty slice.
func (c Collection) For(identity string) []NftData {
	records := c[identity]
	out := make([]NftData, len(records))
	copy(out, records)
	return out
}
