package core

// Entity is a unique identifier for a simulated entity
// Zero is reserved as the invalid entity
type Entity uint64

// EntityNone is the invalid entity ID
const EntityNone Entity = 0
