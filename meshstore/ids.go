package meshstore

// NodeID, EdgeID and TriID are stable indices into the topology store's
// parallel arrays, addressed by integer index rather than pointer. They
// stay valid for the lifetime of a build operation;
// RemoveDeleted() renumbers them via explicit old->new maps.
type (
	NodeID int
	EdgeID int
	TriID  int
)

// Nil sentinels, mirrored from the teacher's types.NilVertex / cdt.NilTri.
const (
	NilNode NodeID = -1
	NilEdge EdgeID = -1
	NilTri  TriID  = -1
)

// IsValid reports whether the id is non-negative. It does not guarantee
// the id is in range for any particular store.
func (id NodeID) IsValid() bool { return id >= 0 }
func (id EdgeID) IsValid() bool { return id >= 0 }
func (id TriID) IsValid() bool  { return id >= 0 }
