package mesh

// Ref is one entry of the mesh's flat reference ("corner") table: it names
// a triangle and which of its three corners is adjacent to the vertex that
// owns this entry's slot.
type Ref struct {
	TID     int
	Corner  int
}
