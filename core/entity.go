package core

// Entity is a stable handle to a simulated game object. IDs are allocated
// monotonically and never reused, so a handle held across a destroy stays
// dangling-but-detectable instead of silently aliasing a new entity.
type Entity uint64

// NoEntity is the zero handle, never allocated.
const NoEntity Entity = 0
