package expansion

// ZoneState is the lifecycle stage of a 64x64 zone.
type ZoneState uint8

const (
	// ZoneUngenerated zones have no chunks yet.
	ZoneUngenerated ZoneState = iota
	// ZoneGenerating zones have a paint task in flight.
	ZoneGenerating
	// ZoneInvisible zones are painted but outside the visible ring; their
	// chunks keep block data and drop mesh buffers.
	ZoneInvisible
	// ZoneVisible zones are painted and inside the visible ring.
	ZoneVisible
)

func (s ZoneState) String() string {
	switch s {
	case ZoneUngenerated:
		return "ungenerated"
	case ZoneGenerating:
		return "generating"
	case ZoneInvisible:
		return "invisible"
	case ZoneVisible:
		return "visible"
	}
	return "unknown"
}

// Stats is a point-in-time summary of the pipeline.
type Stats struct {
	ZonesGenerated int
	ZonesInFlight  int
	ZonesVisible   int
	Chunks         int
	ChunksReady    int
	MeshesBuilt    int
	TasksWaiting   uint64
	TasksRunning   int64
}
