package domain

// CartData maps product ID to size to quantity, mirroring the user record's
// cartData field on the backend. A quantity of zero marks a removed line;
// the entry is retained rather than deleted, and aggregate computations must
// skip it.
type CartData map[string]map[string]int

// Clone produces a deep copy. Mutations go through clone-and-swap so a
// concurrently held snapshot never changes underneath its reader.
func (c CartData) Clone() CartData {
	out := make(CartData, len(c))
	for productID, sizes := range c {
		copied := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			copied[size] = qty
		}
		out[productID] = copied
	}
	return out
}
